package components

import (
	"image/color"
	"time"

	"github.com/decker502/cardash/pkg/types"
	"github.com/decker502/cardash/pkg/utils"
)

// ClimateTimer names one of the four climate timers.
type ClimateTimer int

const (
	// ClimateMain reveals or hides the panel and slides the car.
	ClimateMain ClimateTimer = iota
	// ClimateIcon grows the selected mode icon.
	ClimateIcon
	// ClimateGlow widens the background glow mask.
	ClimateGlow
	// ClimateFade fades and slides the text lines.
	ClimateFade

	climateTimerCount
)

// ClimateTimers lists the timers in the order they are advanced each tick.
var ClimateTimers = [climateTimerCount]ClimateTimer{ClimateMain, ClimateIcon, ClimateGlow, ClimateFade}

func (c ClimateTimer) String() string {
	switch c {
	case ClimateMain:
		return "main"
	case ClimateIcon:
		return "icon"
	case ClimateGlow:
		return "glow"
	case ClimateFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Mode tints.
var (
	CoolTint       = color.NRGBA{R: 83, G: 249, B: 255, A: 255}
	HeatTint       = color.NRGBA{R: 255, G: 83, B: 104, A: 255}
	InactiveTint   = color.NRGBA{R: 255, G: 255, B: 255, A: 98}
	climateTintFor = map[types.ClimateMode]color.NRGBA{
		types.ClimateCool: CoolTint,
		types.ClimateHeat: HeatTint,
	}
)

// ClimateComponent is the state of the climate panel.
type ClimateComponent struct {
	IsActive    bool
	Mode        types.ClimateMode
	Temperature int

	Timers   [climateTimerCount]AnimationTimer
	Progress [climateTimerCount]float64
}

// NewClimateComponent returns an inactive panel in Cool mode.
func NewClimateComponent(initialTemperature int) *ClimateComponent {
	c := &ClimateComponent{
		Mode:        types.ClimateCool,
		Temperature: initialTemperature,
	}
	c.Progress[ClimateFade] = 1
	return c
}

// StartTimer (re)starts one timer from zero.
func (c *ClimateComponent) StartTimer(id ClimateTimer, now time.Time) {
	c.Timers[id].Start(now)
	c.Progress[id] = 0
}

// Running reports whether the given timer is present.
func (c *ClimateComponent) Running(id ClimateTimer) bool {
	return c.Timers[id].Running()
}

// SetActive opens (true) or closes (false) the panel. Opening also
// replays the mode icon growth.
func (c *ClimateComponent) SetActive(active bool, now time.Time) {
	c.IsActive = active
	c.StartTimer(ClimateMain, now)
	if active {
		c.StartTimer(ClimateIcon, now)
	}
}

// ToggleMode switches Cool and Heat and replays the icon growth.
func (c *ClimateComponent) ToggleMode(now time.Time) {
	c.Mode = c.Mode.Toggle()
	c.StartTimer(ClimateIcon, now)
}

// AdjustTemperature moves the set point. There is no bound.
func (c *ClimateComponent) AdjustTemperature(delta int) {
	c.Temperature += delta
}

// ContentVisible reports whether temperature, arrows and mode icons are drawn.
func (c *ClimateComponent) ContentVisible() bool {
	return c.IsActive && !c.Running(ClimateMain)
}

// CarSlide is the direction adjusted Main progress: 1 means the car sits
// fully to the right to make room for the panel.
func (c *ClimateComponent) CarSlide() float64 {
	p := c.Progress[ClimateMain]
	running := c.Running(ClimateMain)
	switch {
	case c.IsActive && running:
		return p
	case c.IsActive:
		return 1
	case running:
		return 1 - p
	default:
		return 0
	}
}

// TextReversed reports whether the text lines play their hide animation.
func (c *ClimateComponent) TextReversed() bool {
	return c.Running(ClimateFade) && !c.IsActive
}

// TextOpacity is the direction adjusted Fade progress.
func (c *ClimateComponent) TextOpacity() float64 {
	p := c.Progress[ClimateFade]
	if c.TextReversed() {
		return 1 - p
	}
	return p
}

// LineY places a text line resting at rest and rising from rest+delta,
// using the raw Fade progress as the fraction.
func (c *ClimateComponent) LineY(rest, delta float64) float64 {
	start, end := rest+delta, rest
	if c.TextReversed() {
		start, end = end, start
	}
	return utils.Lerp(start, end, c.Progress[ClimateFade])
}

// IconGrowth returns the enlargement fraction of a mode icon. The selected
// mode grows with Icon progress, the other shrinks with its complement.
func (c *ClimateComponent) IconGrowth(mode types.ClimateMode) float64 {
	p := c.Progress[ClimateIcon]
	if mode == c.Mode {
		return p
	}
	return 1 - p
}

// IconTint returns the tint of a mode icon. The unselected icon turns
// translucent white while Icon runs.
func (c *ClimateComponent) IconTint(mode types.ClimateMode) color.NRGBA {
	if mode != c.Mode && c.Running(ClimateIcon) {
		return InactiveTint
	}
	return climateTintFor[mode]
}

// GlowVisible reports whether the glow mask is drawn: only after both
// Main and Icon have finished.
func (c *ClimateComponent) GlowVisible() bool {
	return c.IsActive && !c.Running(ClimateIcon) && !c.Running(ClimateMain)
}

// GlowWidth is the revealed fraction of the glow graphic width.
func (c *ClimateComponent) GlowWidth() float64 {
	return c.Progress[ClimateGlow]
}

// Animating reports whether any climate timer is present.
func (c *ClimateComponent) Animating() bool {
	for i := range c.Timers {
		if c.Timers[i].Running() {
			return true
		}
	}
	return false
}
