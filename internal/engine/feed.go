package engine

import "sync"

// Feed delivers engine events to the presentation layer without ever
// blocking the loop: when the buffer fills, the oldest event is
// dropped, since a skipped frame beats a stalled tick.
type Feed struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewFeed creates a feed with the given buffer size.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 64
	}
	return &Feed{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Send queues an event. If the buffer is full the oldest event is
// dropped and the send retried, best effort.
func (f *Feed) Send(evt Event) {
	select {
	case <-f.done:
		return
	default:
	}

	select {
	case f.events <- evt:
	default:
		select {
		case <-f.events:
		default:
		}
		select {
		case f.events <- evt:
		default:
		}
	}
}

// Events is the channel the presentation layer reads.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Done closes when the feed shuts down.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Close marks the feed finished. Safe to call more than once.
func (f *Feed) Close() {
	f.doneOnce.Do(func() {
		close(f.done)
	})
}
