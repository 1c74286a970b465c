package systems

import (
	"time"

	"github.com/decker502/cardash/pkg/components"
)

// ChargeSystem advances the charge panel reveal.
type ChargeSystem struct {
	duration time.Duration
}

// NewChargeSystem creates a charge system with the given reveal duration.
func NewChargeSystem(duration time.Duration) *ChargeSystem {
	return &ChargeSystem{duration: duration}
}

// Update advances the Charge timer. An absent timer reads as fully settled.
func (s *ChargeSystem) Update(now time.Time, c *components.ChargeComponent) {
	if !c.Charge.Running() {
		c.Progress = 1
		return
	}
	c.Progress, _ = c.Charge.Advance(now, s.duration)
}
