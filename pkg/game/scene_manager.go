package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw methods are called.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a manager with no active scene; use SwitchTo to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] switching scene: %T", scene)
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the active scene. Does nothing without one.
func (sm *SceneManager) Update(now time.Time) {
	if sm.currentScene != nil {
		sm.currentScene.Update(now)
	}
}

// Draw renders the active scene. Does nothing without one.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// NeedsRedraw reports whether the active scene wants a new frame.
func (sm *SceneManager) NeedsRedraw() bool {
	return sm.currentScene != nil && sm.currentScene.NeedsRedraw()
}
