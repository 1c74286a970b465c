package components

import (
	"testing"

	"github.com/decker502/cardash/pkg/types"
)

func TestNewClimateComponent(t *testing.T) {
	c := NewClimateComponent(29)

	if c.IsActive || c.Mode != types.ClimateCool || c.Temperature != 29 {
		t.Errorf("new climate: active=%v mode=%v temp=%d", c.IsActive, c.Mode, c.Temperature)
	}
	if c.Progress[ClimateFade] != 1 {
		t.Errorf("idle Fade progress = %v, want 1", c.Progress[ClimateFade])
	}
	if c.Animating() {
		t.Error("new climate must have no timers running")
	}
}

func TestClimateSetActive(t *testing.T) {
	c := NewClimateComponent(29)

	c.SetActive(true, at(0))
	if !c.Running(ClimateMain) || !c.Running(ClimateIcon) {
		t.Error("opening must start Main and Icon")
	}
	if c.ContentVisible() {
		t.Error("content hidden while Main runs")
	}

	c.Timers[ClimateIcon].Clear()
	c.SetActive(false, at(100))
	if !c.Running(ClimateMain) {
		t.Error("closing must start Main")
	}
	if c.Running(ClimateIcon) {
		t.Error("closing must not start Icon")
	}
}

func TestClimateTemperatureUnbounded(t *testing.T) {
	c := NewClimateComponent(0)
	for i := 0; i < 5; i++ {
		c.AdjustTemperature(-1)
	}
	if c.Temperature != -5 {
		t.Errorf("Temperature = %d, want -5", c.Temperature)
	}
}

func TestClimateCarSlide(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		running bool
		p       float64
		want    float64
	}{
		{"opening", true, true, 0.25, 0.25},
		{"open", true, false, 0, 1},
		{"closing", false, true, 0.25, 0.75},
		{"closed", false, false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClimateComponent(29)
			c.IsActive = tt.active
			if tt.running {
				c.Timers[ClimateMain].Start(at(0))
			}
			c.Progress[ClimateMain] = tt.p

			if got := c.CarSlide(); got != tt.want {
				t.Errorf("CarSlide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClimateIconTintAndGrowth(t *testing.T) {
	c := NewClimateComponent(29)
	c.IsActive = true
	c.ToggleMode(at(0))
	c.Progress[ClimateIcon] = 0.25

	if c.Mode != types.ClimateHeat {
		t.Fatalf("Mode = %v, want heat", c.Mode)
	}
	if got := c.IconGrowth(types.ClimateHeat); got != 0.25 {
		t.Errorf("selected growth = %v, want 0.25", got)
	}
	if got := c.IconGrowth(types.ClimateCool); got != 0.75 {
		t.Errorf("unselected growth = %v, want 0.75", got)
	}
	if got := c.IconTint(types.ClimateCool); got != InactiveTint {
		t.Errorf("unselected tint while Icon runs = %v, want %v", got, InactiveTint)
	}
	if got := c.IconTint(types.ClimateHeat); got != HeatTint {
		t.Errorf("selected tint = %v, want %v", got, HeatTint)
	}

	c.Timers[ClimateIcon].Clear()
	if got := c.IconTint(types.ClimateCool); got != CoolTint {
		t.Errorf("unselected tint after Icon = %v, want %v", got, CoolTint)
	}
}

func TestClimateGlowVisible(t *testing.T) {
	c := NewClimateComponent(29)
	c.SetActive(true, at(0))
	if c.GlowVisible() {
		t.Error("glow hidden while Main and Icon run")
	}

	c.Timers[ClimateMain].Clear()
	if c.GlowVisible() {
		t.Error("glow hidden while Icon runs")
	}

	c.Timers[ClimateIcon].Clear()
	if !c.GlowVisible() {
		t.Error("glow visible once Main and Icon are absent")
	}
}

func TestClimateTextDirection(t *testing.T) {
	c := NewClimateComponent(29)
	c.StartTimer(ClimateFade, at(0))
	c.Progress[ClimateFade] = 0.25

	if !c.TextReversed() {
		t.Error("inactive climate with Fade running should play the hide direction")
	}
	if got := c.TextOpacity(); got != 0.75 {
		t.Errorf("hiding TextOpacity() = %v, want 0.75", got)
	}
	if got := c.LineY(100, 20); got != 105 {
		t.Errorf("hiding LineY() = %v, want 105", got)
	}

	c.IsActive = true
	if got := c.TextOpacity(); got != 0.25 {
		t.Errorf("showing TextOpacity() = %v, want 0.25", got)
	}
	if got := c.LineY(100, 20); got != 115 {
		t.Errorf("showing LineY() = %v, want 115", got)
	}
}
