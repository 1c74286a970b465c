package components

import (
	"time"

	"github.com/decker502/cardash/pkg/utils"
)

// ChargeComponent is the state of the charging panel.
type ChargeComponent struct {
	IsCharged bool
	Charge    AnimationTimer

	// Progress is the raw Charge progress. It reads 1 whenever the timer
	// is absent, whether or not the panel is charged.
	Progress float64
}

// NewChargeComponent returns an inactive, settled charge panel.
func NewChargeComponent() *ChargeComponent {
	return &ChargeComponent{Progress: 1}
}

// SetCharged opens (true) or closes (false) the panel and restarts the reveal.
func (c *ChargeComponent) SetCharged(charged bool, now time.Time) {
	c.IsCharged = charged
	c.Charge.Start(now)
	c.Progress = 0
}

// Visible reports whether the panel needs drawing at all.
func (c *ChargeComponent) Visible() bool {
	return c.IsCharged || c.Charge.Running()
}

// Reversed reports whether the panel animates in its hide direction.
func (c *ChargeComponent) Reversed() bool {
	return !c.IsCharged
}

// Adjusted is the direction adjusted progress used for opacity:
// Progress when charged, 1-Progress otherwise.
func (c *ChargeComponent) Adjusted() float64 {
	if c.Reversed() {
		return 1 - c.Progress
	}
	return c.Progress
}

// LineY places a text line that rests at rest and rises from rest+delta.
//
// While hiding, the start and end are swapped but the raw Progress is
// still the interpolation fraction, so text mirrors the icon fade.
func (c *ChargeComponent) LineY(rest, delta float64) float64 {
	start, end := rest+delta, rest
	if c.Reversed() {
		start, end = end, start
	}
	return utils.Lerp(start, end, c.Progress)
}

// Animating reports whether the Charge timer is present.
func (c *ChargeComponent) Animating() bool {
	return c.Charge.Running()
}
