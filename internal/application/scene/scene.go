// Package scene defines the Scene interface driven by the game host.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The host calls Update once per tick
// and Draw once per frame.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene
	// replaces this one; an error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene. It must not change simulation state.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game ends.
	OnExit()
}
