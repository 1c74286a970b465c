package systems

import (
	"time"

	"github.com/decker502/cardash/pkg/components"
)

// LockSystem advances the Switch and Bounce timers of the door locks.
type LockSystem struct {
	switchDuration time.Duration
	bounceDuration time.Duration
}

// NewLockSystem creates a lock system.
//
// Parameters:
//   - switchDuration: icon morph duration
//   - bounceDuration: show/hide slide duration
func NewLockSystem(switchDuration, bounceDuration time.Duration) *LockSystem {
	return &LockSystem{
		switchDuration: switchDuration,
		bounceDuration: bounceDuration,
	}
}

// Update advances every lock. The two timers of a lock never affect each other.
func (s *LockSystem) Update(now time.Time, locks []*components.LockComponent) {
	for _, l := range locks {
		s.advanceSwitch(now, l)
		s.advanceBounce(now, l)
	}
}

func (s *LockSystem) advanceSwitch(now time.Time, l *components.LockComponent) {
	if !l.Switch.Running() {
		return
	}
	l.SwitchProgress, _ = l.Switch.Advance(now, s.switchDuration)
}

func (s *LockSystem) advanceBounce(now time.Time, l *components.LockComponent) {
	if !l.Bounce.Running() {
		return
	}
	p, done := l.Bounce.Advance(now, s.bounceDuration)
	l.BounceProgress = p

	switch {
	case done && l.IsShown:
		l.Alpha = 1
	case done:
		l.Alpha = 0
	case l.IsShown:
		l.Alpha = p
	default:
		l.Alpha = 1 - p
	}
}
