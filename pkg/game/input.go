package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/roadrash/pkg/sim"
)

// Controls is polled once per tick.
type Controls interface {
	// Input is the held steering and throttle keys.
	Input() sim.Input
	// StartPressed reports a fresh press of the start key.
	StartPressed() bool
}

// Keyboard reads the arrow keys (or WASD) and ENTER.
type Keyboard struct{}

// Input reports the held arrow or WASD keys.
func (Keyboard) Input() sim.Input {
	return sim.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// StartPressed reports ENTER or SPACE pressed this tick.
func (Keyboard) StartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
