package scenes

import (
	"log"
	"time"

	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/game"
	"github.com/decker502/cardash/pkg/render"
	"github.com/decker502/cardash/pkg/types"
	"github.com/decker502/cardash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TapSource reports the pointer press of the current frame, if any.
type TapSource func() (utils.Tap, bool)

// DashboardScene binds pointer input to the panel controller and draws the dashboard.
type DashboardScene struct {
	state      *game.DashboardState
	controller *game.PanelController
	renderer   *render.Renderer

	taps  TapSource
	dirty bool
}

// Option configures a DashboardScene.
type Option func(*DashboardScene)

// WithTapSource replaces the ebiten touch and mouse input.
func WithTapSource(src TapSource) Option {
	return func(s *DashboardScene) {
		s.taps = src
	}
}

// NewDashboardScene creates the dashboard on the configured initial panel.
//
// Parameters:
//   - cfg: validated dashboard configuration
//   - renderer: painter; it also supplies the vehicle rect to the controller
func NewDashboardScene(cfg *config.DashboardConfig, renderer *render.Renderer, opts ...Option) *DashboardScene {
	s := &DashboardScene{
		state:      game.NewDashboardState(cfg),
		controller: game.NewPanelController(cfg.Animation, renderer),
		renderer:   renderer,
		taps:       utils.JustTapped,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.controller.Restore(s.state, cfg.Panel())
	log.Printf("[DashboardScene] started on %v", s.controller.Current())
	return s
}

// State returns the owned dashboard state.
func (s *DashboardScene) State() *game.DashboardState {
	return s.state
}

// Controller returns the panel controller.
func (s *DashboardScene) Controller() *game.PanelController {
	return s.controller
}

// Update applies this frame's tap, then advances every timer to now.
func (s *DashboardScene) Update(now time.Time) {
	if tap, ok := s.taps(); ok {
		s.HandleTap(tap, now)
		s.dirty = true
	}
	s.controller.Advance(s.state, now)
}

// HandleTap routes one tap: the navigation bar first, then the
// controls of the active panel.
func (s *DashboardScene) HandleTap(tap utils.Tap, now time.Time) {
	layout := s.renderer.Layout()

	if i := utils.HitIndex(tap, layout.NavRects()); i >= 0 {
		s.controller.Select(s.state, types.Panels[i], now)
		return
	}

	switch s.controller.Current() {
	case types.PanelLock:
		s.handleLockTap(tap, layout, now)
	case types.PanelClimate:
		s.handleClimateTap(tap, layout, now)
	}
}

func (s *DashboardScene) handleLockTap(tap utils.Tap, layout render.Layout, now time.Time) {
	center := layout.Center()
	for _, l := range s.state.Locks {
		pos := l.Position(layout.LockParked(l.ID), center)
		if render.LockRect(pos).Contains(tap.X, tap.Y) {
			s.controller.ToggleLock(s.state, l.ID, now)
			return
		}
	}
}

func (s *DashboardScene) handleClimateTap(tap utils.Tap, layout render.Layout, now time.Time) {
	climate := s.state.Climate
	if !climate.ContentVisible() {
		return
	}

	controls := layout.ClimateControls(climate)
	switch utils.HitIndex(tap, []types.Rect{controls.Cool, controls.Heat, controls.Up, controls.Down}) {
	case 0, 1:
		s.controller.ToggleClimateMode(s.state, now)
	case 2:
		s.controller.AdjustTemperature(s.state, 1)
	case 3:
		s.controller.AdjustTemperature(s.state, -1)
	}
}

// Draw paints the current snapshot.
func (s *DashboardScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.state.Snapshot(s.controller.Current()))
	s.dirty = false
}

// NeedsRedraw reports whether a timer is running or input arrived since the last Draw.
func (s *DashboardScene) NeedsRedraw() bool {
	return s.dirty || s.state.Animating()
}

// Invalidate forces the next frame to be drawn, e.g. after a resize.
func (s *DashboardScene) Invalidate() {
	s.dirty = true
}
