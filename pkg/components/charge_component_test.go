package components

import (
	"math"
	"testing"
)

func TestChargeIdleProgressIsOne(t *testing.T) {
	c := NewChargeComponent()

	if c.IsCharged {
		t.Error("charge panel must start inactive")
	}
	if c.Progress != 1 {
		t.Errorf("idle Progress = %v, want 1", c.Progress)
	}
	if c.Visible() {
		t.Error("inactive settled panel should not be visible")
	}
}

func TestChargeSetCharged(t *testing.T) {
	c := NewChargeComponent()
	c.SetCharged(true, at(0))

	if !c.IsCharged || !c.Animating() || c.Progress != 0 {
		t.Errorf("after SetCharged(true): charged=%v running=%v progress=%v", c.IsCharged, c.Animating(), c.Progress)
	}
	if !c.Visible() {
		t.Error("charging panel must be visible")
	}

	c.SetCharged(false, at(100))
	if c.IsCharged || !c.Visible() {
		t.Errorf("hiding panel: charged=%v visible=%v, want false,true", c.IsCharged, c.Visible())
	}
}

func TestChargeAdjustedAndLineY(t *testing.T) {
	const rest, delta = 300.0, 40.0

	tests := []struct {
		name         string
		charged      bool
		progress     float64
		wantAdjusted float64
		wantY        float64
	}{
		{"showing start", true, 0, 0, 340},
		{"showing quarter", true, 0.25, 0.25, 330},
		{"showing done", true, 1, 1, 300},
		{"hiding start", false, 0, 1, 300},
		{"hiding quarter", false, 0.25, 0.75, 310},
		{"hiding done", false, 1, 0, 340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChargeComponent()
			c.SetCharged(tt.charged, at(0))
			c.Progress = tt.progress

			if got := c.Adjusted(); math.Abs(got-tt.wantAdjusted) > 1e-9 {
				t.Errorf("Adjusted() = %v, want %v", got, tt.wantAdjusted)
			}
			if got := c.LineY(rest, delta); math.Abs(got-tt.wantY) > 1e-9 {
				t.Errorf("LineY() = %v, want %v", got, tt.wantY)
			}
		})
	}
}
