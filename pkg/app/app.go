// Package app wraps dashboard start-up so the desktop binary (main.go)
// and the mobile binding (mobile/mobile.go) share it.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/embedded"
	"github.com/decker502/cardash/pkg/game"
	"github.com/decker502/cardash/pkg/render"
	"github.com/decker502/cardash/pkg/scenes"
	"github.com/decker502/cardash/pkg/types"
	"github.com/decker502/cardash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config is the start-up configuration.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath is a .yaml/.yml/.toml file; empty uses the embedded config.
	ConfigPath string
	// Panel overrides the configured initial panel when not empty.
	Panel string
}

// App implements ebiten.Game around the dashboard scene.
type App struct {
	sceneManager *game.SceneManager
	dashboard    *config.DashboardConfig
	now          func() time.Time
	verbose      bool
	drawn        bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates the dashboard application.
//
// embedded.Init must be called first unless cfg.ConfigPath is set.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dashboard, err := ResolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	w, h := dashboard.Window.Width, dashboard.Window.Height
	renderer, err := render.NewRenderer(dashboard, float64(w), float64(h))
	if err != nil {
		return nil, fmt.Errorf("renderer init failed: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewDashboardScene(dashboard, renderer))

	// Frames are only repainted while something changes.
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("[App] dashboard ready: %dx%d, panel %v", w, h, dashboard.Panel())
	return &App{
		sceneManager: sceneManager,
		dashboard:    dashboard,
		now:          time.Now,
		verbose:      cfg.Verbose,
	}, nil
}

// ResolveConfig loads the dashboard configuration for cfg.
//
// An explicit ConfigPath must load; its errors are returned. The embedded
// file falls back to the built-in defaults with a warning. A Panel override
// must name a known panel.
func ResolveConfig(cfg Config) (*config.DashboardConfig, error) {
	var dashboard *config.DashboardConfig

	if cfg.ConfigPath != "" {
		loaded, err := config.LoadDashboardConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("config load failed: %w", err)
		}
		log.Printf("[Config] loaded %s", cfg.ConfigPath)
		dashboard = loaded
	} else {
		dashboard = loadEmbeddedConfig()
	}

	if cfg.Panel != "" {
		panel, err := types.ParsePanel(cfg.Panel)
		if err != nil {
			return nil, fmt.Errorf("--panel: %w", err)
		}
		dashboard.InitialPanel = panel.String()
	}
	return dashboard, nil
}

func loadEmbeddedConfig() *config.DashboardConfig {
	data, err := embedded.ReadFile(config.DashboardConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v, using defaults", err)
		return config.DefaultDashboardConfig()
	}
	dashboard, err := config.ParseDashboardConfig(data, config.FormatYAML)
	if err != nil {
		log.Printf("[Config] Warning: %v, using defaults", err)
		return config.DefaultDashboardConfig()
	}
	log.Printf("[Config] loaded embedded %s", config.DashboardConfigPath)
	return dashboard
}

// Update advances the dashboard once per tick.
func (a *App) Update() error {
	if !utils.IsMobile() {
		a.handleFullscreen()
	}
	a.sceneManager.Update(a.now())
	return nil
}

// handleFullscreen toggles fullscreen on F11. Leaving fullscreen needs a
// few frames before the window size sticks.
func (a *App) handleFullscreen() {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.dashboard.Window.Width, a.dashboard.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.dashboard.Window.Width, a.dashboard.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.drawn = false
}

// Draw repaints the screen when the scene changed since the last frame.
func (a *App) Draw(screen *ebiten.Image) {
	if a.drawn && !a.sceneManager.NeedsRedraw() {
		return
	}
	a.sceneManager.Draw(screen)
	a.drawn = true
}

// DrawFinalScreen letterboxes the logical screen in black and scales it
// with linear filtering.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the configured logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.dashboard.Window.Width, a.dashboard.Window.Height
}

// Dashboard returns the resolved configuration.
func (a *App) Dashboard() *config.DashboardConfig {
	return a.dashboard
}

// IsVerbose reports whether logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
