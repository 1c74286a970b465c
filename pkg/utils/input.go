// Package utils holds small helpers shared by the dashboard packages.
package utils

import (
	"github.com/decker502/cardash/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tap is a single touch or left click that started this frame.
type Tap struct {
	X, Y float64
}

// JustTapped reports the tap that started during the current frame.
// Touch input is checked first so a touch screen never also reports
// the synthesized mouse click.
func JustTapped() (Tap, bool) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return Tap{X: float64(x), Y: float64(y)}, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return Tap{X: float64(x), Y: float64(y)}, true
	}

	return Tap{}, false
}

// HitIndex returns the index of the first rectangle containing the tap,
// or -1 when none does.
func HitIndex(tap Tap, rects []types.Rect) int {
	for i, r := range rects {
		if r.Contains(tap.X, tap.Y) {
			return i
		}
	}
	return -1
}
