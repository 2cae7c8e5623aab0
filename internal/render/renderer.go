package render

import (
	"io"

	"git.lost.host/meutraa/bowl/internal/game"
	"git.lost.host/meutraa/bowl/internal/score"
)

type Renderer interface {
	// Render writes the score sheet of a scored game
	Render(w io.Writer, g *game.Game, result score.Result) error
}
