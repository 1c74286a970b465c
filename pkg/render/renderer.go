// Package render paints the dashboard with ebiten vector shapes and text.
//
// It only reads snapshots of the widget state; every opacity, size and
// position comes from the component accessors. The renderer also reports
// the on-screen vehicle rect back to the engine for the tyre anchors.
package render

import (
	"image/color"

	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/game"
	"github.com/decker502/cardash/pkg/types"
	"github.com/decker502/cardash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette.
var (
	BackgroundColor = color.NRGBA{R: 18, G: 20, B: 24, A: 255}
	NavActiveTint   = color.NRGBA{R: 83, G: 249, B: 255, A: 255}
	NavInactiveTint = color.NRGBA{R: 132, G: 132, B: 132, A: 138}

	textColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	carBodyColor   = color.NRGBA{R: 58, G: 62, B: 70, A: 255}
	carEdgeColor   = color.NRGBA{R: 120, G: 126, B: 138, A: 255}
	carGlassColor  = color.NRGBA{R: 28, G: 32, B: 40, A: 255}
	wheelColor     = color.NRGBA{R: 10, G: 10, B: 12, A: 255}
	navBarColor    = color.NRGBA{R: 26, G: 28, B: 34, A: 255}
	lockedColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	unlockedColor  = color.NRGBA{R: 83, G: 249, B: 255, A: 255}
	batteryColor   = color.NRGBA{R: 120, G: 220, B: 120, A: 255}
	tyreWarnColor  = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	tyreOkColor    = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	tyreFillColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 8}
	tyreIconColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
)

// glowAlpha is the opacity of the climate glow overlay.
const glowAlpha = 0.3

// Renderer draws dashboard snapshots and tracks the vehicle rect.
type Renderer struct {
	layout  Layout
	fonts   *FontCache
	display *config.DashboardConfig

	vehicle types.Rect
}

// NewRenderer creates a renderer for a w x h logical screen.
//
// Returns a *LoadError if the fonts cannot be loaded.
func NewRenderer(cfg *config.DashboardConfig, w, h float64) (*Renderer, error) {
	fonts, err := NewFontCache()
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		fonts:   fonts,
		display: cfg,
	}
	r.Resize(w, h)
	return r, nil
}

// Resize changes the logical screen size. The vehicle rect is reset to
// the centred position until the next Draw.
func (r *Renderer) Resize(w, h float64) {
	r.layout = NewLayout(w, h)
	r.vehicle = r.layout.CarRect(0)
}

// Layout returns the current screen layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// VehicleRect implements game.VehicleRectSource.
func (r *Renderer) VehicleRect() types.Rect {
	return r.vehicle
}

// Draw paints one frame.
func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(BackgroundColor)

	car := r.layout.CarRect(snap.Climate.CarSlide())
	r.vehicle = car
	snap.Tyre.VehicleRect = car

	r.drawCar(screen, car)
	r.drawLocks(screen, &snap)
	r.drawCharge(screen, &snap.Charge)
	r.drawClimate(screen, &snap.Climate, car)
	r.drawTyres(screen, &snap.Tyre)
	r.drawNav(screen, snap.Panel)
}

// withAlpha scales the alpha of c by a in [0,1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * utils.Clamp01(a))
	return c
}

func fillRect(dst *ebiten.Image, rect types.Rect, clr color.Color) {
	if rect.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Width()), float32(rect.Height()), clr, true)
}

func strokeRect(dst *ebiten.Image, rect types.Rect, width float64, clr color.Color) {
	if rect.Empty() {
		return
	}
	vector.StrokeRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Width()), float32(rect.Height()), float32(width), clr, true)
}

func strokeLine(dst *ebiten.Image, a, b types.Point, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
}

// drawText draws s anchored at (x, y) with the given horizontal and vertical alignment.
func (r *Renderer) drawText(dst *ebiten.Image, s string, size float64, bold bool, x, y float64, h, v text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	text.Draw(dst, s, r.fonts.Face(size, bold), op)
}
