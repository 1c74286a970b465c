package components

import (
	"time"

	"github.com/decker502/cardash/pkg/types"
)

// Tyre icon size in logical pixels; anchors are offset by its height.
const (
	TyreIconWidth  = 28.0
	TyreIconHeight = 81.0
)

// TyreComponent is the state of the tyre pressure panel.
//
// The four slots reveal one after another (LeftUp, RightUp, RightDown, LeftDown).
type TyreComponent struct {
	IsActive bool

	Timers   [types.TyreSlotCount]AnimationTimer
	Progress [types.TyreSlotCount]float64

	// VehicleRect is the on-screen vehicle image, refreshed every tick
	// from the renderer. It is never written by the engine otherwise.
	VehicleRect types.Rect
}

// NewTyreComponent returns an inactive panel with no slot running.
func NewTyreComponent() *TyreComponent {
	return &TyreComponent{}
}

// StartSlot (re)starts one slot timer from zero.
func (t *TyreComponent) StartSlot(slot types.TyreSlot, at time.Time) {
	t.Timers[slot].Start(at)
	t.Progress[slot] = 0
}

// Open activates the panel and starts the relay at startAt, which may
// lie in the future. The other three slots are cleared.
func (t *TyreComponent) Open(startAt time.Time) {
	t.IsActive = true
	for _, slot := range types.TyreSlots[1:] {
		t.Timers[slot].Clear()
	}
	t.StartSlot(types.TyreLeftUp, startAt)
}

// Close deactivates the panel and restarts only LeftUp.
func (t *TyreComponent) Close(now time.Time) {
	t.IsActive = false
	t.StartSlot(types.TyreLeftUp, now)
}

// Running reports whether the slot timer is present.
func (t *TyreComponent) Running(slot types.TyreSlot) bool {
	return t.Timers[slot].Running()
}

// runningBefore reports whether any slot earlier in the relay is running.
func (t *TyreComponent) runningBefore(slot types.TyreSlot) bool {
	for _, s := range types.TyreSlots[:slot] {
		if t.Timers[s].Running() {
			return true
		}
	}
	return false
}

// BoxScale is the size factor of a slot's quadrant box, 0 when no box is drawn.
//
// A running slot grows with its progress while the panel opens and shrinks
// with 1-progress while it closes. Idle slots show a full box once revealed,
// and during the close every idle slot stays full while LeftUp shrinks.
func (t *TyreComponent) BoxScale(slot types.TyreSlot) float64 {
	switch {
	case t.Running(slot) && t.IsActive:
		return t.Progress[slot]
	case t.Running(slot):
		return 1 - t.Progress[slot]
	case t.IsActive && t.Revealed(slot):
		return 1
	case !t.IsActive && t.Running(types.TyreLeftUp):
		return 1
	default:
		return 0
	}
}

// Revealed reports whether the slot's telemetry text is shown: the panel
// is active and neither this slot nor any earlier one is still running.
func (t *TyreComponent) Revealed(slot types.TyreSlot) bool {
	return t.IsActive && !t.Running(slot) && !t.runningBefore(slot)
}

// Anchor is the center of the tyre icon for a slot, derived from the vehicle rect.
func (t *TyreComponent) Anchor(slot types.TyreSlot) types.Point {
	r := t.VehicleRect
	switch slot {
	case types.TyreRightUp:
		return types.Point{X: r.Max.X - 30, Y: r.Min.Y + 40 + TyreIconHeight}
	case types.TyreRightDown:
		return types.Point{X: r.Max.X - 30, Y: r.Max.Y - 50 - TyreIconHeight}
	case types.TyreLeftDown:
		return types.Point{X: r.Min.X + 30, Y: r.Max.Y - 50 - TyreIconHeight}
	default:
		return types.Point{X: r.Min.X + 30, Y: r.Min.Y + 40 + TyreIconHeight}
	}
}

// Animating reports whether any slot timer is present.
func (t *TyreComponent) Animating() bool {
	for i := range t.Timers {
		if t.Timers[i].Running() {
			return true
		}
	}
	return false
}
