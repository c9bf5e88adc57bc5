package game

import (
	"math"
	"time"
)

// Timing constants of the lock and clear state machine. The session
// owns the actual timers; these are the durations it arms them with.
const (
	// LockDelay is how long a resting piece may still be moved before
	// it locks into the stack.
	LockDelay = 500 * time.Millisecond
	// LineClearDelay is how long full rows flash before they are
	// removed.
	LineClearDelay = 125 * time.Millisecond
	// LockResetLimit caps how many successful shifts and rotations may
	// re-arm the lock delay for one piece. At the cap, the next
	// qualifying action places the piece instead.
	LockResetLimit = 15
)

// DropInterval returns the gravity period for a level, following the
// guideline curve (0.8 - (level-1)*0.007)^(level-1) seconds, floored at
// one nanosecond so a ticker can always be built from it.
func DropInterval(level int) time.Duration {
	rate := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
	d := time.Duration(rate * float64(time.Second))
	if d <= 0 {
		return time.Nanosecond
	}
	return d
}
