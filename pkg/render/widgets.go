package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/game"
	"github.com/decker502/cardash/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (r *Renderer) drawCar(dst *ebiten.Image, car types.Rect) {
	w, h := car.Width(), car.Height()

	// wheels sit under the body at the tyre anchors
	wheelW, wheelH := w*0.12, h*0.16
	for _, p := range []types.Point{
		{X: car.Min.X + wheelW/3, Y: car.Min.Y + h*0.25},
		{X: car.Max.X - wheelW/3, Y: car.Min.Y + h*0.25},
		{X: car.Min.X + wheelW/3, Y: car.Max.Y - h*0.22},
		{X: car.Max.X - wheelW/3, Y: car.Max.Y - h*0.22},
	} {
		fillRect(dst, types.RectFromCenter(p, wheelW, wheelH), wheelColor)
	}

	body := types.Rect{
		Min: types.Point{X: car.Min.X + w*0.06, Y: car.Min.Y},
		Max: types.Point{X: car.Max.X - w*0.06, Y: car.Max.Y},
	}
	fillRect(dst, body, carBodyColor)
	strokeRect(dst, body, 2, carEdgeColor)

	windshield := types.Rect{
		Min: types.Point{X: car.Min.X + w*0.16, Y: car.Min.Y + h*0.24},
		Max: types.Point{X: car.Max.X - w*0.16, Y: car.Min.Y + h*0.36},
	}
	rearWindow := types.Rect{
		Min: types.Point{X: car.Min.X + w*0.18, Y: car.Max.Y - h*0.22},
		Max: types.Point{X: car.Max.X - w*0.18, Y: car.Max.Y - h*0.14},
	}
	fillRect(dst, windshield, carGlassColor)
	fillRect(dst, rearWindow, carGlassColor)
}

func (r *Renderer) drawLocks(dst *ebiten.Image, snap *game.Snapshot) {
	center := r.layout.Center()
	for i := range snap.Locks {
		l := &snap.Locks[i]
		pos := l.Position(r.layout.LockParked(l.ID), center)

		if l.Morphing() {
			// incoming icon is the new state, outgoing the previous one
			drawLockIcon(dst, pos, LockIconSize*l.ScaleDown(), !l.IsLocked, 1)
			drawLockIcon(dst, pos, LockIconSize*l.ScaleUp(), l.IsLocked, 1)
			continue
		}
		drawLockIcon(dst, pos, LockIconSize, l.IsLocked, l.Opacity())
	}
}

// drawLockIcon draws a door lock in its lock state colour.
func drawLockIcon(dst *ebiten.Image, p types.Point, size float64, locked bool, alpha float64) {
	clr := unlockedColor
	if locked {
		clr = lockedColor
	}
	drawPadlock(dst, p, size, locked, withAlpha(clr, alpha))
}

// drawPadlock draws a padlock of side size centred on p. An open padlock
// has its shackle raised to the right.
func drawPadlock(dst *ebiten.Image, p types.Point, size float64, locked bool, clr color.NRGBA) {
	if size <= 0 || clr.A == 0 {
		return
	}
	shackle := types.Point{X: p.X + size*0.18, Y: p.Y - size*0.2}
	if locked {
		shackle = types.Point{X: p.X, Y: p.Y - size*0.1}
	}

	vector.StrokeCircle(dst, float32(shackle.X), float32(shackle.Y), float32(size*0.2), float32(size*0.08), clr, true)
	body := types.RectFromCenter(types.Point{X: p.X, Y: p.Y + size*0.17}, size*0.7, size*0.46)
	fillRect(dst, body, clr)
}

func (r *Renderer) drawCharge(dst *ebiten.Image, c *components.ChargeComponent) {
	if !c.Visible() {
		return
	}
	alpha := c.Adjusted()
	d := r.display.Charge
	content := r.layout.Content()
	cx := content.Center().X

	battery := r.layout.ChargeIconRect()
	strokeRect(dst, battery, 4, withAlpha(batteryColor, alpha))
	level := battery
	level.Min.Y = battery.Max.Y - battery.Height()*0.62
	fillRect(dst, level.Scale(0.9), withAlpha(batteryColor, alpha*0.6))

	clr := withAlpha(textColor, alpha)
	lines := r.layout.ChargeLines()

	y := c.LineY(lines[0].Rest, TextRise)
	r.drawText(dst, d.Range, 36, true, cx, y, text.AlignCenter, text.AlignStart, clr)
	r.drawText(dst, d.Percent, 24, false, cx, y+40, text.AlignCenter, text.AlignStart, clr)

	y = c.LineY(lines[1].Rest, TextRise)
	r.drawText(dst, d.Status, 20, true, cx, y, text.AlignCenter, text.AlignStart, clr)
	r.drawText(dst, d.Remaining, 20, false, cx, y+40, text.AlignCenter, text.AlignStart, clr)

	y = c.LineY(lines[2].Rest, TextRise)
	r.drawText(dst, d.Rate, 20, false, content.Min.X+10, y, text.AlignStart, text.AlignStart, clr)
	r.drawText(dst, d.Voltage, 20, false, content.Max.X-10, y, text.AlignEnd, text.AlignStart, clr)
}

func (r *Renderer) drawClimate(dst *ebiten.Image, c *components.ClimateComponent, car types.Rect) {
	if c.GlowVisible() {
		glow := GlowVisibleRect(GlowRect(car), c.GlowWidth())
		fillRect(dst, glow, withAlpha(c.IconTint(c.Mode), glowAlpha))
	}
	if !c.ContentVisible() {
		return
	}

	alpha := c.TextOpacity()
	clr := withAlpha(textColor, alpha)
	lines := r.layout.ClimateLines()
	x := r.layout.ClimateColumn()
	d := r.display.Climate

	iconY := c.LineY(lines[0].Rest, TextRise)
	for _, mode := range []types.ClimateMode{types.ClimateCool, types.ClimateHeat} {
		rect := ClimateIconRect(mode, iconY, c.IconGrowth(mode))
		tint := c.IconTint(mode)
		drawModeIcon(dst, rect, mode, tint)
		r.drawText(dst, strings.ToUpper(mode.String()), 18, true, rect.Center().X, rect.Max.Y+10, text.AlignCenter, text.AlignStart, tint)
	}

	tempY := c.LineY(lines[1].Rest, TextRise)
	r.drawText(dst, fmt.Sprintf("%d°C", c.Temperature), 80, true, x, tempY, text.AlignCenter, text.AlignCenter, clr)
	up, down := r.layout.ArrowRects(tempY)
	drawChevron(dst, up, true, clr)
	drawChevron(dst, down, false, clr)

	r.drawText(dst, "CURRENT TEMPERATURE", 15, false, x, c.LineY(lines[2].Rest, TextRise), text.AlignCenter, text.AlignCenter, clr)

	insideX := r.layout.Center().X / 4
	outsideX := 10 + r.layout.Center().X/2
	y := c.LineY(lines[3].Rest, TextRise)
	r.drawText(dst, "INSIDE", 15, false, insideX, y, text.AlignCenter, text.AlignCenter, clr)
	r.drawText(dst, "OUTSIDE", 15, false, outsideX, y, text.AlignCenter, text.AlignCenter, clr)
	y = c.LineY(lines[4].Rest, TextRise)
	r.drawText(dst, d.InsideTemperature, 25, true, insideX, y, text.AlignCenter, text.AlignCenter, clr)
	r.drawText(dst, d.OutsideTemperature, 25, true, outsideX, y, text.AlignCenter, text.AlignCenter, clr)
}

// drawModeIcon draws a snowflake (cool) or a sun (heat) inside rect.
func drawModeIcon(dst *ebiten.Image, rect types.Rect, mode types.ClimateMode, clr color.NRGBA) {
	c := rect.Center()
	radius := min(rect.Width(), rect.Height()) / 2
	if mode == types.ClimateHeat {
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(radius*0.55), clr, true)
		return
	}
	strokeLine(dst, types.Point{X: c.X - radius, Y: c.Y}, types.Point{X: c.X + radius, Y: c.Y}, 3, clr)
	strokeLine(dst, types.Point{X: c.X, Y: c.Y - radius}, types.Point{X: c.X, Y: c.Y + radius}, 3, clr)
	strokeLine(dst, types.Point{X: c.X - radius*0.7, Y: c.Y - radius*0.7}, types.Point{X: c.X + radius*0.7, Y: c.Y + radius*0.7}, 3, clr)
	strokeLine(dst, types.Point{X: c.X - radius*0.7, Y: c.Y + radius*0.7}, types.Point{X: c.X + radius*0.7, Y: c.Y - radius*0.7}, 3, clr)
}

func drawChevron(dst *ebiten.Image, rect types.Rect, up bool, clr color.NRGBA) {
	c := rect.Center()
	dx, dy := rect.Width()/3, rect.Height()/6
	if up {
		dy = -dy
	}
	tip := types.Point{X: c.X, Y: c.Y + dy}
	strokeLine(dst, types.Point{X: c.X - dx, Y: c.Y - dy}, tip, 4, clr)
	strokeLine(dst, types.Point{X: c.X + dx, Y: c.Y - dy}, tip, 4, clr)
}

func (r *Renderer) drawTyres(dst *ebiten.Image, t *components.TyreComponent) {
	if t.IsActive {
		for _, slot := range types.TyreSlots {
			icon := types.RectFromCenter(t.Anchor(slot), components.TyreIconWidth, components.TyreIconHeight)
			fillRect(dst, icon, tyreIconColor)
		}
	}

	d := r.display.Tyres
	for _, slot := range types.TyreSlots {
		scale := t.BoxScale(slot)
		if scale <= 0 {
			continue
		}
		quad := r.layout.TyreQuadrant(slot)
		edge := tyreOkColor
		if slot == types.TyreLeftUp {
			edge = tyreWarnColor
		}
		box := quad.Scale(scale)
		fillRect(dst, box, tyreFillColor)
		strokeRect(dst, box, 2, edge)

		if !t.Revealed(slot) {
			continue
		}
		reading := d.Reading(slot)
		cx := quad.Center().X
		r.drawText(dst, reading.Pressure, 40, true, cx, quad.Min.Y+10, text.AlignCenter, text.AlignStart, textColor)
		r.drawText(dst, reading.Temperature, 20, false, cx, quad.Min.Y+60, text.AlignCenter, text.AlignStart, textColor)
		status, detail, _ := strings.Cut(d.Status, " ")
		r.drawText(dst, status, 60, true, cx, quad.Max.Y-50, text.AlignCenter, text.AlignEnd, textColor)
		r.drawText(dst, detail, 25, false, cx, quad.Max.Y-20, text.AlignCenter, text.AlignEnd, textColor)
	}
}

func (r *Renderer) drawNav(dst *ebiten.Image, active types.Panel) {
	bar := r.layout.NavRects()
	fillRect(dst, types.Rect{Min: bar[0].Min, Max: bar[len(bar)-1].Max}, navBarColor)

	for i, cell := range bar {
		panel := types.Panels[i]
		tint := NavInactiveTint
		if panel == active {
			tint = NavActiveTint
		}
		icon := types.RectFromCenter(cell.Center(), NavIconSize, NavIconSize)
		drawNavIcon(dst, panel, icon, tint)
	}
}

func drawNavIcon(dst *ebiten.Image, panel types.Panel, rect types.Rect, clr color.NRGBA) {
	c := rect.Center()
	s := rect.Width()
	switch panel {
	case types.PanelLock:
		drawPadlock(dst, c, s, true, clr)
	case types.PanelCharge:
		top := types.Point{X: c.X + s*0.1, Y: rect.Min.Y}
		mid1 := types.Point{X: c.X - s*0.2, Y: c.Y + s*0.05}
		mid2 := types.Point{X: c.X + s*0.2, Y: c.Y - s*0.05}
		bottom := types.Point{X: c.X - s*0.1, Y: rect.Max.Y}
		strokeLine(dst, top, mid1, 4, clr)
		strokeLine(dst, mid1, mid2, 4, clr)
		strokeLine(dst, mid2, bottom, 4, clr)
	case types.PanelClimate:
		drawModeIcon(dst, rect, types.ClimateCool, clr)
	case types.PanelTyre:
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(s*0.42), float32(s*0.14), clr, true)
	}
}
