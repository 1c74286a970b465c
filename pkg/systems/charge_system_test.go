package systems

import (
	"testing"
	"time"

	"github.com/decker502/cardash/pkg/components"
)

func TestChargeSystem(t *testing.T) {
	sys := NewChargeSystem(700 * time.Millisecond)

	t.Run("idle inactive reads full progress", func(t *testing.T) {
		c := components.NewChargeComponent()
		c.Progress = 0.3
		sys.Update(at(0), c)
		if c.Progress != 1 {
			t.Errorf("Progress = %v, want 1", c.Progress)
		}
	})

	t.Run("reveal progresses and completes", func(t *testing.T) {
		c := components.NewChargeComponent()
		c.SetCharged(true, at(0))

		sys.Update(at(350), c)
		if c.Progress != 0.5 {
			t.Errorf("Progress at 350ms = %v, want 0.5", c.Progress)
		}

		sys.Update(at(700), c)
		if c.Progress != 1 || c.Animating() {
			t.Errorf("at 700ms progress=%v running=%v, want 1,false", c.Progress, c.Animating())
		}
	})
}
