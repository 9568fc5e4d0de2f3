package tui

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"

	"quadrogue/pkg/game/tile"
)

func TestLineKeepsGlyphOrder(t *testing.T) {
	tiles := []tile.Tile{
		tile.New('#', 130, 52, false),
		tile.New('#', 130, 52, false),
		tile.New('.', 8, 234, true),
		tile.New('@', 15, 234, true),
		tile.Void,
	}
	assert.Equal(t, "##.@ ", color.ClearCode(Line(tiles)))
}

func TestLineEmpty(t *testing.T) {
	assert.Equal(t, "", Line(nil))
}
