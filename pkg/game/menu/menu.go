// Package menu provides the boxed list widget and status bars drawn over the
// map.
package menu

import (
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/display"
	"quadrogue/pkg/game/tile"
)

// Box drawing glyphs
const (
	LineHorz      = '─'
	LineVert      = '│'
	LineDownRight = '┌'
	LineDownLeft  = '┐'
	LineUpRight   = '└'
	LineUpLeft    = '┘'
)

// Widget colours
const (
	ColorText   uint8 = 15
	ColorSubtle uint8 = 8
	ColorBack   uint8 = 0
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
}

// TextItem is a selectable item that is just a label
type TextItem string

// GetLabel returns the label
func (t TextItem) GetLabel() string { return string(t) }

// IsSelectable always returns true
func (t TextItem) IsSelectable() bool { return true }

// Menu is a boxed list with the title in its top border and a '>' pointer on
// the selected item. The box outline covers [Pos, Pos+Size].
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Pos      world.Vec
	Size     world.Vec
	Focus    bool
}

// New creates a focused menu with the first selectable item selected
func New(title string, pos, size world.Vec, items []MenuItem) *Menu {
	m := &Menu{Title: title, Items: items, Pos: pos, Size: size, Focus: true}
	for i, item := range items {
		if item.IsSelectable() {
			m.Selected = i
			break
		}
	}
	return m
}

// Next moves the selection down to the next selectable item. It stops at the
// last one.
func (m *Menu) Next() {
	for i := m.Selected + 1; i < len(m.Items); i++ {
		if m.Items[i].IsSelectable() {
			m.Selected = i
			return
		}
	}
}

// Prev moves the selection up to the previous selectable item. It stops at
// the first one.
func (m *Menu) Prev() {
	for i := m.Selected - 1; i >= 0; i-- {
		if m.Items[i].IsSelectable() {
			m.Selected = i
			return
		}
	}
}

// Current returns the selected item, or nil for an empty menu
func (m *Menu) Current() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.Selected]
}

// rows is the number of item rows inside the box
func (m *Menu) rows() int {
	return max(m.Size.Y-1, 0)
}

// scroll returns the index of the first visible item
func (m *Menu) scroll() int {
	return max(m.Selected-m.rows()+1, 0)
}

// RenderTo draws the menu into d; anything outside d is clipped
func (m *Menu) RenderTo(d *display.Display) {
	if m.Size.X < 1 || m.Size.Y < 1 {
		return
	}
	border := func(r rune) tile.Tile { return tile.New(r, ColorText, ColorBack, true) }
	at := func(x, y int) world.Vec { return m.Pos.Add(world.V(x, y)) }

	d.Set(at(0, 0), border(LineDownRight))
	d.Set(at(m.Size.X, 0), border(LineDownLeft))
	d.Set(at(0, m.Size.Y), border(LineUpRight))
	d.Set(at(m.Size.X, m.Size.Y), border(LineUpLeft))

	title := []rune(m.Title)
	for col := 1; col < m.Size.X; col++ {
		top := border(LineHorz)
		if col-1 < len(title) {
			top = tile.New(title[col-1], ColorText, ColorBack, true)
		}
		d.Set(at(col, 0), top)
		d.Set(at(col, m.Size.Y), border(LineHorz))
	}
	for row := 1; row < m.Size.Y; row++ {
		d.Set(at(0, row), border(LineVert))
		d.Set(at(m.Size.X, row), border(LineVert))
	}

	first := m.scroll()
	for row := 1; row < m.Size.Y; row++ {
		for col := 1; col < m.Size.X; col++ {
			d.Set(at(col, row), tile.Void)
		}

		index := first + row - 1
		if index >= len(m.Items) {
			continue
		}
		item := m.Items[index]
		if index == m.Selected && m.Focus {
			d.Set(at(1, row), tile.New('>', ColorText, ColorBack, true))
		}

		fore := ColorText
		if !item.IsSelectable() {
			fore = ColorSubtle
		}
		// pointer, gap, then the label up to the right border
		label := []rune(item.GetLabel())
		for i, r := range label {
			col := 3 + i
			if col >= m.Size.X {
				break
			}
			d.Set(at(col, row), tile.New(r, fore, ColorBack, true))
		}
	}
}
