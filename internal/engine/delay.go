package engine

import "time"

// delay is a re-armable one-shot timer whose channel is safe to select
// on while disarmed. Firing is edge-triggered: after a fire the delay
// stays quiet until armed again.
type delay struct {
	timer *time.Timer
	armed bool
}

func newDelay() *delay {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return &delay{timer: t}
}

// C is the fire channel.
func (d *delay) C() <-chan time.Time {
	return d.timer.C
}

// arm schedules a fire, replacing any pending one.
func (d *delay) arm(dur time.Duration) {
	d.disarm()
	d.timer.Reset(dur)
	d.armed = true
}

// disarm cancels a pending fire. A fire that already slipped into the
// channel is drained so it cannot be mistaken for a fresh arm.
func (d *delay) disarm() {
	d.armed = false
	if !d.timer.Stop() {
		select {
		case <-d.timer.C:
		default:
		}
	}
}
