package renderer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/tile"
)

// recorder is a headless backend that replays codes and counts frames
type recorder struct {
	codes  []string
	frames int
	closed int
	rows   []string
}

func (r *recorder) Init() error { return nil }
func (r *recorder) Close() error { r.closed++; return nil }
func (r *recorder) Size() world.Vec { return world.V(20, 10) }
func (r *recorder) Input() input.Source { return &input.ScriptSource{Codes: r.codes} }
func (r *recorder) RenderFrame(g *state.Game) error {
	r.frames++
	r.rows = append(r.rows, g.Display.Row(g.Display.Size.Y/2))
	return nil
}

func testGame() *state.Game {
	palette := tile.NewTable[tile.Tile]()
	palette.Add("tile", tile.New('.', 8, 234, true))
	level := world.NewLevel(world.V(10, 10), 0)
	g := state.NewGame(level, palette, tile.Entity{Char: '@', Fore: 15}, world.V(1, 1))
	g.SetStats(160, 255)
	return g
}

func TestRunLoop(t *testing.T) {
	r := &recorder{codes: []string{"l", "l"}}
	g := testGame()

	require.NoError(t, Run(r, g, 3))

	assert.Equal(t, world.V(3, 1), g.Position)
	assert.Equal(t, 2, r.frames, "one frame per tick until quit")
	assert.Equal(t, 1, r.closed)
	assert.Equal(t, world.V(20, 7), g.Display.Size)
	assert.Equal(t, world.V(20, 3), g.Header.Size)
}

// mainThread runs its event loop until the game loop closes it
type mainThread struct {
	recorder
	mu     sync.Mutex
	done   chan struct{}
	events chan input.RawInput
}

func (m *mainThread) Input() input.Source { return input.NewChannelSource(m.events) }

func (m *mainThread) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed == 0 {
		close(m.done)
	}
	m.closed++
	return nil
}

func (m *mainThread) RunMain() error {
	m.events <- input.RawInput{Code: "j"}
	m.events <- input.RawInput{Code: "q"}
	select {
	case <-m.done:
		return nil
	case <-time.After(5 * time.Second):
		return assert.AnError
	}
}

func TestRunMainThread(t *testing.T) {
	m := &mainThread{done: make(chan struct{}), events: make(chan input.RawInput, 2)}
	g := testGame()

	require.NoError(t, Run(m, g, 3))
	assert.Equal(t, world.V(1, 2), g.Position)
	assert.True(t, g.Quit)
}
