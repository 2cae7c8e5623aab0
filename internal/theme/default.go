package theme

import (
	"fmt"
	"strconv"

	"git.lost.host/meutraa/bowl/internal/game"
	"git.lost.host/meutraa/bowl/internal/graphics"
)

type DefaultTheme struct {
	Color bool
}

func (t *DefaultTheme) RenderMark(mark game.Mark, pins int) string {
	sym := markSyms[mark]
	if mark == game.MarkPins {
		sym = strconv.Itoa(pins)
	}
	if !t.Color {
		return sym
	}
	color, ok := markColors[mark]
	if !ok {
		return sym
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, sym)
}

var (
	markSyms = map[game.Mark]string{
		game.MarkStrike: "X",
		game.MarkSpare:  "/",
		game.MarkGutter: "-",
	}
	markColors = map[game.Mark]graphics.Color{
		game.MarkStrike: {R: 236, G: 30, B: 0},    // red
		game.MarkSpare:  {R: 0, G: 118, B: 236},   // blue
		game.MarkGutter: {R: 106, G: 106, B: 106}, // grey
	}
)
