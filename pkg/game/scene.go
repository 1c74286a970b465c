package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one full-screen view driven by the app loop.
type Scene interface {
	// Update handles input and advances animations to now.
	Update(now time.Time)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)

	// NeedsRedraw reports whether the next frame differs from the last one drawn.
	NeedsRedraw() bool
}
