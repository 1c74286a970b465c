// Package main provides a transition verification tool for the dashboard
// animation engine.
//
// Usage:
//
//	go run ./cmd/verify_transitions [flags]
//
// Flags:
//
//	--config <path>   Dashboard config file (default: built-in defaults)
//	--panel <name>    Initial panel (lock, charge, climate, tyre)
//	--speed <factor>  Clock speed factor, 0.25 plays four times slower (default: 1)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	1-4        - Select Lock, Charge, Climate, Tyre
//	Z/X/C/V    - Toggle left, right, top, bottom lock
//	M          - Toggle climate mode
//	Up/Down    - Adjust temperature
//	P          - Pause the clock
//	N          - Step one frame while paused
//	Q          - Quit
//
// Purpose:
//   - Slow down panel transitions to inspect every timer
//   - Verify chain triggers and the tyre relay against the overlay
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/render"
	"github.com/decker502/cardash/pkg/scenes"
	"github.com/decker502/cardash/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const frameStep = time.Second / 60

var (
	configFlag  = flag.String("config", "", "Dashboard config file (.yaml, .yml or .toml)")
	panelFlag   = flag.String("panel", "", "Initial panel (lock, charge, climate, tyre)")
	speedFlag   = flag.Float64("speed", 1, "Clock speed factor")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var errQuit = errors.New("quit")

var panelKeys = map[ebiten.Key]types.Panel{
	ebiten.Key1: types.PanelLock,
	ebiten.Key2: types.PanelCharge,
	ebiten.Key3: types.PanelClimate,
	ebiten.Key4: types.PanelTyre,
}

var lockKeys = map[ebiten.Key]types.LockID{
	ebiten.KeyZ: types.LockLeft,
	ebiten.KeyX: types.LockRight,
	ebiten.KeyC: types.LockTop,
	ebiten.KeyV: types.LockBottom,
}

// TransitionVerifyGame implements ebiten.Game around a dashboard driven by
// a virtual clock.
type TransitionVerifyGame struct {
	cfg   *config.DashboardConfig
	scene *scenes.DashboardScene

	clock  time.Time
	speed  float64
	paused bool
}

// NewTransitionVerifyGame creates the verifier.
func NewTransitionVerifyGame(cfg *config.DashboardConfig, speed float64) (*TransitionVerifyGame, error) {
	renderer, err := render.NewRenderer(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &TransitionVerifyGame{
		cfg:   cfg,
		scene: scenes.NewDashboardScene(cfg, renderer),
		clock: time.Now(),
		speed: speed,
	}, nil
}

// Update handles the keyboard and advances the virtual clock.
func (g *TransitionVerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		log.Printf("[Verify] paused=%v", g.paused)
	}

	step := time.Duration(float64(frameStep) * g.speed)
	if g.paused {
		step = 0
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			step = frameStep
		}
	}
	g.clock = g.clock.Add(step)

	state, controller := g.scene.State(), g.scene.Controller()
	for key, panel := range panelKeys {
		if inpututil.IsKeyJustPressed(key) {
			controller.Select(state, panel, g.clock)
			g.scene.Invalidate()
		}
	}
	for key, id := range lockKeys {
		if inpututil.IsKeyJustPressed(key) {
			controller.ToggleLock(state, id, g.clock)
			g.scene.Invalidate()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		controller.ToggleClimateMode(state, g.clock)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		controller.AdjustTemperature(state, 1)
		g.scene.Invalidate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		controller.AdjustTemperature(state, -1)
		g.scene.Invalidate()
	}

	g.scene.Update(g.clock)
	return nil
}

// Draw renders the dashboard plus the timer overlay.
func (g *TransitionVerifyGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	ebitenutil.DebugPrint(screen, g.debugText())
}

func (g *TransitionVerifyGame) debugText() string {
	state := g.scene.State()
	var b strings.Builder

	fmt.Fprintf(&b, "panel=%v speed=%.2fx paused=%v animating=%v\n",
		g.scene.Controller().Current(), g.speed, g.paused, state.Animating())

	for _, id := range types.LockIDs {
		l := state.Lock(id)
		fmt.Fprintf(&b, "lock %-6v locked=%-5v shown=%-5v switch=%s bounce=%s alpha=%.2f\n",
			id, l.IsLocked, l.IsShown,
			timerText(l.Switch.Running(), l.SwitchProgress),
			timerText(l.Bounce.Running(), l.BounceProgress), l.Alpha)
	}

	c := state.Charge
	fmt.Fprintf(&b, "charge charged=%v timer=%s\n", c.IsCharged, timerText(c.Animating(), c.Progress))

	cl := state.Climate
	fmt.Fprintf(&b, "climate active=%v mode=%v temp=%d\n", cl.IsActive, cl.Mode, cl.Temperature)
	for _, id := range components.ClimateTimers {
		fmt.Fprintf(&b, "  %-5v %s\n", id, timerText(cl.Running(id), cl.Progress[id]))
	}

	ty := state.Tyre
	fmt.Fprintf(&b, "tyre active=%v\n", ty.IsActive)
	for _, slot := range types.TyreSlots {
		fmt.Fprintf(&b, "  %-10v %s box=%.2f\n", slot, timerText(ty.Running(slot), ty.Progress[slot]), ty.BoxScale(slot))
	}
	return b.String()
}

func timerText(running bool, progress float64) string {
	if !running {
		return fmt.Sprintf("[ -- %.2f]", progress)
	}
	return fmt.Sprintf("[run %.2f]", progress)
}

// Layout returns the configured screen size.
func (g *TransitionVerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func loadConfig() (*config.DashboardConfig, error) {
	cfg := config.DefaultDashboardConfig()
	if *configFlag != "" {
		loaded, err := config.LoadDashboardConfig(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *panelFlag != "" {
		panel, err := types.ParsePanel(*panelFlag)
		if err != nil {
			return nil, err
		}
		cfg.InitialPanel = panel.String()
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	if *verboseFlag {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmicroseconds)
	} else {
		log.SetOutput(io.Discard)
	}

	if *speedFlag <= 0 {
		fmt.Fprintln(os.Stderr, "--speed must be positive")
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	g, err := NewTransitionVerifyGame(cfg, *speedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create verifier: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Transition Verifier - %.2fx", *speedFlag))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("Verifier error: %v", err)
	}
}
