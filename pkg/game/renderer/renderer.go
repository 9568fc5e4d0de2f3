// Package renderer drives the game loop against a rendering backend.
package renderer

import (
	"errors"

	"quadrogue/pkg/game/gameplay"
	"quadrogue/pkg/game/state"
)

// Run initialises r and runs the game until it quits.
// Backends implementing MainThread keep the calling goroutine for their
// event loop.
func Run(r Renderer, g *state.Game, headerRows int) error {
	if err := r.Init(); err != nil {
		return err
	}

	mt, ok := r.(MainThread)
	if !ok {
		return loop(r, g, headerRows)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- loop(r, g, headerRows)
	}()
	err := mt.RunMain()
	return errors.Join(err, <-errc)
}

// loop is the turn loop: one tick per input poll
func loop(r Renderer, g *state.Game, headerRows int) (err error) {
	defer func() {
		err = errors.Join(err, r.Close())
	}()

	src := r.Input()
	for !g.Quit {
		g.Resize(r.Size(), headerRows)
		if err := gameplay.Update(g, src, gameplay.PollTimeout); err != nil {
			return err
		}
		if g.Quit {
			break
		}
		if err := r.RenderFrame(g); err != nil {
			return err
		}
	}
	g.Logger.Info("game over", "pos", g.Position.String(), "hunger", g.Hunger)
	return nil
}
