package engine

import (
	"testing"
	"time"
)

func TestDelayFiresWhenArmed(t *testing.T) {
	d := newDelay()
	if d.armed {
		t.Fatal("fresh delay reports armed")
	}

	d.arm(5 * time.Millisecond)
	if !d.armed {
		t.Fatal("armed delay reports disarmed")
	}
	select {
	case <-d.C():
	case <-time.After(2 * time.Second):
		t.Fatal("armed delay never fired")
	}

	// Edge-triggered: no second fire without a new arm.
	select {
	case <-d.C():
		t.Error("delay fired twice off one arm")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDelayDisarmCancelsPendingFire(t *testing.T) {
	d := newDelay()
	d.arm(20 * time.Millisecond)
	d.disarm()
	if d.armed {
		t.Error("disarmed delay reports armed")
	}

	select {
	case <-d.C():
		t.Error("disarmed delay fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDelayRearmReplacesDeadline(t *testing.T) {
	d := newDelay()
	d.arm(5 * time.Millisecond)
	d.arm(time.Hour)

	select {
	case <-d.C():
		t.Error("re-armed delay fired on the replaced deadline")
	case <-time.After(100 * time.Millisecond):
	}
	d.disarm()
}
