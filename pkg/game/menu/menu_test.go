package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/display"
	"quadrogue/pkg/game/tile"
)

func items(labels ...string) []MenuItem {
	out := make([]MenuItem, len(labels))
	for i, l := range labels {
		out[i] = TextItem(l)
	}
	return out
}

func TestMenuNavigationClamps(t *testing.T) {
	m := New("tiles", world.V(0, 0), world.V(10, 4), items("a", "b", "c"))
	require.Equal(t, 0, m.Selected)

	m.Prev()
	assert.Equal(t, 0, m.Selected)
	m.Next()
	m.Next()
	m.Next()
	assert.Equal(t, 2, m.Selected)
	assert.Equal(t, "c", m.Current().GetLabel())
}

// heading is a label that cannot be selected
type heading string

func (h heading) GetLabel() string   { return string(h) }
func (h heading) IsSelectable() bool { return false }

func TestMenuSkipsHeadings(t *testing.T) {
	list := []MenuItem{heading("floors"), TextItem("tile"), heading("walls"), TextItem("brick_wall")}
	m := New("tiles", world.V(0, 0), world.V(12, 6), list)
	require.Equal(t, 1, m.Selected)

	m.Next()
	assert.Equal(t, 3, m.Selected)
	m.Prev()
	assert.Equal(t, 1, m.Selected)
	m.Prev()
	assert.Equal(t, 1, m.Selected, "heading above the first item is never selected")
}

func TestMenuEmpty(t *testing.T) {
	m := New("none", world.V(0, 0), world.V(5, 3), nil)
	assert.Nil(t, m.Current())
	m.Next()
	m.Prev()
	m.RenderTo(display.New(world.V(6, 4)))
}

func TestMenuRender(t *testing.T) {
	d := display.New(world.V(10, 5))
	m := New("Tiles", world.V(1, 0), world.V(8, 3), items("water", "grass"))
	m.Next()
	m.RenderTo(d)

	assert.Equal(t, " ┌Tiles──┐", d.Row(0))
	assert.Equal(t, " │  water│", d.Row(1))
	assert.Equal(t, " │> grass│", d.Row(2))
	assert.Equal(t, " └───────┘", d.Row(3))
	assert.Equal(t, "          ", d.Row(4))
}

func TestMenuRenderClipsLabelsAndDisplay(t *testing.T) {
	d := display.New(world.V(6, 3))
	m := New("x", world.V(0, 0), world.V(8, 2), items("cheeses and fire"))
	m.RenderTo(d)

	assert.Equal(t, "┌x────", d.Row(0))
	assert.Equal(t, "│> che", d.Row(1))
	got, ok := d.At(world.V(5, 1))
	require.True(t, ok)
	assert.Equal(t, tile.Glyph('e'), got.Char)
}

func TestMenuScrollsToSelection(t *testing.T) {
	d := display.New(world.V(8, 4))
	m := New("", world.V(0, 0), world.V(7, 3), items("a", "b", "c", "d"))
	m.Next()
	m.Next()
	m.Next()
	m.RenderTo(d)

	assert.Equal(t, "│  c   │", d.Row(1))
	assert.Equal(t, "│> d   │", d.Row(2))
}

func TestTextBar(t *testing.T) {
	assert.Equal(t, "██▏", TextBar(16, 16))
	assert.Equal(t, "█▌▏", TextBar(12, 16))
	assert.Equal(t, "▌ ▏", TextBar(4, 16))
	assert.Equal(t, "  ▏", TextBar(0, 16))
	assert.Equal(t, "██▏", TextBar(99, 16), "clamped to the limit")
	assert.Equal(t, "  ▏", TextBar(-3, 16), "clamped to zero")
}
