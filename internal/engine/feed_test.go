package engine

import (
	"testing"
	"time"
)

func TestFeedDropsOldestWhenFull(t *testing.T) {
	f := NewFeed(2)

	f.Send(RTTEvent{RTT: 1 * time.Millisecond})
	f.Send(RTTEvent{RTT: 2 * time.Millisecond})
	f.Send(RTTEvent{RTT: 3 * time.Millisecond})

	want := []time.Duration{2 * time.Millisecond, 3 * time.Millisecond}
	for _, w := range want {
		select {
		case evt := <-f.Events():
			rtt, ok := evt.(RTTEvent)
			if !ok || rtt.RTT != w {
				t.Errorf("received %+v, expected RTTEvent %v", evt, w)
			}
		default:
			t.Fatalf("feed empty, expected RTTEvent %v", w)
		}
	}
	select {
	case evt := <-f.Events():
		t.Errorf("extra event %+v, expected the oldest to be dropped", evt)
	default:
	}
}

func TestFeedCloseStopsDelivery(t *testing.T) {
	f := NewFeed(4)
	f.Close()
	f.Close() // closing twice must be safe

	select {
	case <-f.Done():
	default:
		t.Error("Done() still open after Close()")
	}

	f.Send(RTTEvent{RTT: time.Millisecond})
	select {
	case evt := <-f.Events():
		t.Errorf("closed feed delivered %+v", evt)
	default:
	}
}
