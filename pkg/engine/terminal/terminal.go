package terminal

import (
	"os"

	"golang.org/x/term"

	"quadrogue/pkg/engine/world"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Size returns the terminal size as a vector
func Size() world.Vec {
	width, height := GetSize()
	return world.V(width, height)
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EnableRaw puts stdin into raw mode and returns a function that restores
// the previous state
func EnableRaw() (restore func() error, err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
