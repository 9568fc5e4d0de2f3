package state

import (
	"log/slog"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/display"
	"quadrogue/pkg/game/menu"
	"quadrogue/pkg/game/tile"
)

// Mode selects between exploring a dungeon and editing a single room
type Mode int

const (
	ModePlay Mode = iota
	ModeEdit
)

// Game represents the state of one session
type Game struct {
	Level   *world.Level
	Palette *tile.Palette
	Marker  tile.Entity

	Position world.Vec

	// Display is the map area, Header the status rows above it
	Display *display.Display
	Header  *display.Display

	Health    int
	MaxHealth int
	Hunger    int
	MaxHunger int

	// Count holds the digits typed before a movement key
	Count string

	Menu *menu.Menu

	// Name is the room name, edited in text mode
	Name      string
	TextInput bool

	Mode      Mode
	EditClass int
	RoomsDir  string

	Seed  int64
	Rooms int

	Messages []string

	Quit bool

	Logger *slog.Logger
}

// NewGame creates a game on level with the player standing at start
func NewGame(level *world.Level, palette *tile.Palette, marker tile.Entity, start world.Vec) *Game {
	return &Game{
		Level:    level,
		Palette:  palette,
		Marker:   marker,
		Position: start,
		Display:  display.New(world.Vec{}),
		Header:   display.New(world.Vec{}),
		Messages: make([]string, 0),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// SetStats sets health and hunger to full
func (g *Game) SetStats(health, hunger int) {
	g.Health, g.MaxHealth = health, health
	g.Hunger, g.MaxHunger = hunger, hunger
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LastMessage returns the newest message, or "" when there is none
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// Resize sets the screen size. The top headerRows rows go to the header and
// the rest to the map.
func (g *Game) Resize(screen world.Vec, headerRows int) {
	headerRows = min(max(headerRows, 0), max(screen.Y, 0))
	g.Header.Resize(world.V(screen.X, headerRows))
	g.Display.Resize(world.V(screen.X, screen.Y-headerRows))
}
