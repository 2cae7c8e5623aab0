package theme

import "git.lost.host/meutraa/bowl/internal/game"

type Theme interface {
	// RenderMark returns the single visible character for a shot box
	RenderMark(mark game.Mark, pins int) string
}
