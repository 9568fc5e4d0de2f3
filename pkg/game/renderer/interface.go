package renderer

import (
	"quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
)

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init prepares the output (raw mode, window, fonts)
	Init() error

	// Close restores the output. It is safe to call more than once.
	Close() error

	// Size returns the screen size in cells, header included
	Size() world.Vec

	// RenderFrame draws the game's header and display buffers
	RenderFrame(g *state.Game) error

	// Input returns the event source of this backend
	Input() input.Source
}

// MainThread is implemented by backends whose event loop must own the main
// goroutine. The game loop then runs on another goroutine.
type MainThread interface {
	RunMain() error
}
