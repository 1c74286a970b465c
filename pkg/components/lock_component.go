package components

import (
	"time"

	"github.com/decker502/cardash/pkg/types"
	"github.com/decker502/cardash/pkg/utils"
)

// LockComponent is the state of one door lock widget.
//
// Two timers run independently:
//   - Switch morphs the lock and unlock icons after a toggle
//   - Bounce slides and fades the widget between its parked point and the screen center
type LockComponent struct {
	ID       types.LockID
	IsLocked bool
	IsShown  bool

	Switch AnimationTimer
	Bounce AnimationTimer

	SwitchProgress float64
	BounceProgress float64

	// Alpha is the widget opacity. It tracks Bounce while Bounce runs and
	// snaps to 1 (shown) or 0 (hidden) when it completes.
	Alpha float64
}

// NewLockComponent returns a locked, shown lock with no timers running.
func NewLockComponent(id types.LockID) *LockComponent {
	return &LockComponent{
		ID:       id,
		IsLocked: true,
		IsShown:  true,
		Alpha:    1,
	}
}

// Toggle flips the lock state and restarts the icon morph. Bounce is not touched.
func (l *LockComponent) Toggle(now time.Time) {
	l.IsLocked = !l.IsLocked
	l.Switch.Start(now)
	l.SwitchProgress = 0
}

// Reveal shows or hides the widget: the icon morph is discarded and the
// slide restarts from its beginning.
func (l *LockComponent) Reveal(shown bool, now time.Time) {
	l.IsShown = shown
	l.Switch.Clear()
	l.Bounce.Start(now)
	l.BounceProgress = 0
	if shown {
		l.Alpha = 0
	} else {
		l.Alpha = 1
	}
}

// Morphing reports whether both icons are drawn (Switch present).
func (l *LockComponent) Morphing() bool {
	return l.Switch.Running()
}

// ScaleUp is the size factor of the incoming icon. The back easing
// overshoots above 1 on purpose; only the dip below 0 is cut.
func (l *LockComponent) ScaleUp() float64 {
	s := utils.EaseInOutBack(l.SwitchProgress)
	if s < 0 {
		return 0
	}
	return s
}

// ScaleDown is the size factor of the outgoing icon.
func (l *LockComponent) ScaleDown() float64 {
	return 1 - l.SwitchProgress
}

// Opacity of the widget. While morphing both icons are fully opaque.
func (l *LockComponent) Opacity() float64 {
	if l.Switch.Running() {
		return 1
	}
	return l.Alpha
}

// Position returns the widget center given its parked point and the destination.
//
// Shown widgets travel center -> parked, hidden ones parked -> center.
// Once Bounce has finished the widget rests at the end of its last trip.
func (l *LockComponent) Position(parked, center types.Point) types.Point {
	from, to := parked, center
	if l.IsShown {
		from, to = center, parked
	}
	if !l.Bounce.Running() {
		return to
	}
	return types.Point{
		X: utils.Lerp(from.X, to.X, l.BounceProgress),
		Y: utils.Lerp(from.Y, to.Y, l.BounceProgress),
	}
}

// Animating reports whether any lock timer is present.
func (l *LockComponent) Animating() bool {
	return l.Switch.Running() || l.Bounce.Running()
}
