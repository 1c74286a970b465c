package render

import (
	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/types"
)

// Screen geometry in logical pixels.
const (
	NavBarHeight = 80.0
	NavIconSize  = 40.0
	LockIconSize = 50.0

	lockPadX = 10.0
	lockPadY = 80.0

	carWidth  = 222.0
	carHeight = 477.0
	carFill   = 0.9

	// TextRise is how far a text line travels while it fades.
	TextRise = 40.0

	climateIconSize = 40.0
	climateIconGrow = 20.0
	arrowSize       = 36.0
	arrowOffset     = 55.0
	glowOverhang    = 10.0
	quadrantGap     = 10.0
)

// Layout resolves every widget rectangle for one screen size.
type Layout struct {
	Width, Height float64
}

// NewLayout returns the layout of a w x h logical screen.
func NewLayout(w, h float64) Layout {
	return Layout{Width: w, Height: h}
}

// Content is the screen above the navigation bar.
func (l Layout) Content() types.Rect {
	return types.Rect{Max: types.Point{X: l.Width, Y: l.Height - NavBarHeight}}
}

// Center is the middle of the content area, the lock destination point.
func (l Layout) Center() types.Point {
	return l.Content().Center()
}

// NavRects returns one equal cell per panel along the bottom bar.
func (l Layout) NavRects() []types.Rect {
	rects := make([]types.Rect, len(types.Panels))
	cell := l.Width / float64(len(types.Panels))
	top := l.Height - NavBarHeight
	for i := range rects {
		rects[i] = types.Rect{
			Min: types.Point{X: float64(i) * cell, Y: top},
			Max: types.Point{X: float64(i+1) * cell, Y: l.Height},
		}
	}
	return rects
}

// LockParked is the resting point of a lock while the Lock panel is shown.
func (l Layout) LockParked(id types.LockID) types.Point {
	c := l.Center()
	content := l.Content()
	switch id {
	case types.LockRight:
		return types.Point{X: content.Max.X - lockPadX - LockIconSize/2, Y: c.Y}
	case types.LockTop:
		return types.Point{X: c.X, Y: lockPadY + LockIconSize/2}
	case types.LockBottom:
		return types.Point{X: c.X, Y: content.Max.Y - lockPadY - LockIconSize/2}
	default:
		return types.Point{X: lockPadX + LockIconSize/2, Y: c.Y}
	}
}

// LockRect is the icon and hit box of a lock centred at p.
func LockRect(p types.Point) types.Rect {
	return types.RectFromCenter(p, LockIconSize, LockIconSize)
}

// CarSize fits the vehicle image into the content area at carFill of the fitted size.
func (l Layout) CarSize() (w, h float64) {
	content := l.Content()
	scale := content.Width() / carWidth
	if s := content.Height() / carHeight; s < scale {
		scale = s
	}
	return carWidth * scale * carFill, carHeight * scale * carFill
}

// CarRect places the vehicle for a given slide fraction: 0 centred,
// 1 with its center on the right screen edge.
func (l Layout) CarRect(slide float64) types.Rect {
	w, h := l.CarSize()
	content := l.Content()
	startX := (content.Width() - w) / 2
	endX := content.Width() - w/2
	x := startX + (endX-startX)*slide
	y := content.Min.Y + (content.Height()-h)/2
	return types.Rect{
		Min: types.Point{X: x, Y: y},
		Max: types.Point{X: x + w, Y: y + h},
	}
}

// GlowRect is the left half of the vehicle, slightly taller, where the
// climate glow is revealed.
func GlowRect(car types.Rect) types.Rect {
	return types.Rect{
		Min: types.Point{X: car.Min.X, Y: car.Min.Y - glowOverhang},
		Max: types.Point{X: car.Min.X + car.Width()/2, Y: car.Max.Y + glowOverhang},
	}
}

// GlowVisibleRect is the part of the glow rect revealed at fraction p,
// growing leftwards from its right edge.
func GlowVisibleRect(glow types.Rect, p float64) types.Rect {
	r := glow
	r.Min.X = glow.Max.X - glow.Width()*p
	return r
}

// TyreQuadrant is the box of a tyre slot, one quarter of the content area.
func (l Layout) TyreQuadrant(slot types.TyreSlot) types.Rect {
	content := l.Content()
	c := content.Center()
	g := quadrantGap
	switch slot {
	case types.TyreRightUp:
		return types.Rect{Min: types.Point{X: c.X + g, Y: content.Min.Y + g}, Max: types.Point{X: content.Max.X - g, Y: c.Y - g}}
	case types.TyreRightDown:
		return types.Rect{Min: types.Point{X: c.X + g, Y: c.Y + g}, Max: types.Point{X: content.Max.X - g, Y: content.Max.Y - g}}
	case types.TyreLeftDown:
		return types.Rect{Min: types.Point{X: content.Min.X + g, Y: c.Y + g}, Max: types.Point{X: c.X - g, Y: content.Max.Y - g}}
	default:
		return types.Rect{Min: types.Point{X: content.Min.X + g, Y: content.Min.Y + g}, Max: types.Point{X: c.X - g, Y: c.Y - g}}
	}
}

// TextLine is a text row that rests at Rest and enters from Rest+TextRise.
type TextLine struct {
	Rest float64
}

// ChargeLines are the three charge rows: range and percent, status and
// remaining time, rate and voltage.
func (l Layout) ChargeLines() [3]TextLine {
	content := l.Content()
	return [3]TextLine{
		{Rest: 80},
		{Rest: (content.Max.Y + content.Center().Y) / 2},
		{Rest: content.Max.Y - 35},
	}
}

// ChargeIconRect is the battery graphic, 45% of the content centred.
func (l Layout) ChargeIconRect() types.Rect {
	return l.Content().Scale(0.45)
}

// ClimateLines are the five climate rows: mode icons, set point,
// caption, inside/outside labels, inside/outside readings.
func (l Layout) ClimateLines() [5]TextLine {
	content := l.Content()
	return [5]TextLine{
		{Rest: 80},
		{Rest: content.Center().Y},
		{Rest: content.Max.Y - 90},
		{Rest: content.Max.Y - 70},
		{Rest: content.Max.Y - 40},
	}
}

// ClimateColumn is the x of the climate text column, centred on the left half.
func (l Layout) ClimateColumn() float64 {
	return l.Center().X / 2
}

// ClimateIconRect is the mode icon box at row y enlarged by growth in [0,1].
// Cool grows towards the right, Heat towards the left; both grow downwards.
func ClimateIconRect(mode types.ClimateMode, y, growth float64) types.Rect {
	grow := climateIconGrow * growth
	if mode == types.ClimateHeat {
		r := types.RectFromCenter(types.Point{X: climateIconSize + 70, Y: y}, climateIconSize, climateIconSize)
		r.Min.X -= grow
		r.Max.Y += grow
		return r
	}
	r := types.RectFromCenter(types.Point{X: climateIconSize/2 + 10, Y: y}, climateIconSize, climateIconSize)
	r.Max.X += grow
	r.Max.Y += grow
	return r
}

// ArrowRects are the temperature up and down buttons around the set point row y.
func (l Layout) ArrowRects(y float64) (up, down types.Rect) {
	x := l.ClimateColumn()
	up = types.RectFromCenter(types.Point{X: x, Y: y - arrowOffset}, arrowSize, arrowSize)
	down = types.RectFromCenter(types.Point{X: x, Y: y + arrowOffset}, arrowSize, arrowSize)
	return up, down
}

// ClimateControls are the tap targets of the climate panel.
type ClimateControls struct {
	Cool, Heat types.Rect
	Up, Down   types.Rect
}

// ClimateControls resolves the climate tap targets where they are drawn this frame.
func (l Layout) ClimateControls(c *components.ClimateComponent) ClimateControls {
	lines := l.ClimateLines()
	iconY := c.LineY(lines[0].Rest, TextRise)
	up, down := l.ArrowRects(c.LineY(lines[1].Rest, TextRise))
	return ClimateControls{
		Cool: ClimateIconRect(types.ClimateCool, iconY, c.IconGrowth(types.ClimateCool)),
		Heat: ClimateIconRect(types.ClimateHeat, iconY, c.IconGrowth(types.ClimateHeat)),
		Up:   up,
		Down: down,
	}
}
