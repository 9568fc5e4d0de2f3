// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"strconv"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
)

// maxCount caps the count prefix so a long digit string cannot stall a tick
const maxCount = 9999

// CanEnter checks if the player can step onto p
func CanEnter(g *state.Game, p world.Vec) bool {
	index, err := g.Level.Get(p)
	if err != nil {
		return false
	}
	t, ok := g.Palette.At(index)
	return ok && t.Move
}

// TryMove moves the player up to count steps in dir, where count is the
// pending count prefix (1 when empty). Each step costs one hunger point.
// Movement stops early at the level edge, at an impassable tile or when
// hunger runs out. It returns the number of steps taken.
func TryMove(g *state.Game, dir world.Direction) int {
	delta := dir.Delta()
	steps := 0
	for range takeCount(g) {
		next := g.Position.Add(delta)
		if g.Hunger <= 0 || !CanEnter(g, next) {
			break
		}
		g.Position = next
		g.Hunger--
		steps++
	}
	return steps
}

// takeCount consumes the count prefix. An explicit 0 means no steps.
func takeCount(g *state.Game) int {
	digits := g.Count
	g.Count = ""

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 1
	}
	return min(n, maxCount)
}
