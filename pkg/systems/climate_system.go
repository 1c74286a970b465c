package systems

import (
	"log"
	"time"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/config"
)

// climateTriggers maps a finished climate timer to the timers it starts.
// Glow is started by both Main and Icon; whichever finishes later wins.
var climateTriggers = map[components.ClimateTimer][]components.ClimateTimer{
	components.ClimateMain: {components.ClimateGlow, components.ClimateFade},
	components.ClimateIcon: {components.ClimateGlow},
}

// ClimateTriggers returns the timers started when id completes.
func ClimateTriggers(id components.ClimateTimer) []components.ClimateTimer {
	return climateTriggers[id]
}

// ClimateSystem advances the four climate timers and applies their triggers.
type ClimateSystem struct {
	durations [len(components.ClimateTimers)]time.Duration
}

// NewClimateSystem creates a climate system from the animation config.
func NewClimateSystem(cfg config.AnimationConfig) *ClimateSystem {
	s := &ClimateSystem{}
	s.durations[components.ClimateMain] = cfg.ClimateMain.Duration
	s.durations[components.ClimateIcon] = cfg.ClimateIcon.Duration
	s.durations[components.ClimateGlow] = cfg.ClimateGlow.Duration
	s.durations[components.ClimateFade] = cfg.ClimateFade.Duration
	return s
}

// Update advances the climate timers in order Main, Icon, Glow, Fade.
//
// Timers started by a completion are advanced later in the same call, so a
// Glow or Fade triggered by Main reads as just started (progress 0).
func (s *ClimateSystem) Update(now time.Time, c *components.ClimateComponent) {
	for _, id := range components.ClimateTimers {
		if !c.Timers[id].Running() {
			continue
		}
		p, done := c.Timers[id].Advance(now, s.durations[id])
		c.Progress[id] = p
		if !done {
			continue
		}
		for _, next := range ClimateTriggers(id) {
			log.Printf("[ClimateSystem] %v finished, starting %v", id, next)
			c.StartTimer(next, now)
		}
	}

	// Glow waits for Main and Icon; a stale value must not leak into its first frame.
	if c.Running(components.ClimateMain) || c.Running(components.ClimateIcon) {
		c.Progress[components.ClimateGlow] = 0
	}

	if !c.Running(components.ClimateFade) {
		c.Progress[components.ClimateFade] = 1
	}
	if c.IsActive && !c.Running(components.ClimateIcon) {
		c.Progress[components.ClimateIcon] = 1
	}
	if c.IsActive && !c.Running(components.ClimateGlow) {
		c.Progress[components.ClimateGlow] = 1
	}
}
