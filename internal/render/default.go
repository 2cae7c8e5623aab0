package render

import (
	"io"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bowl/internal/game"
	"git.lost.host/meutraa/bowl/internal/score"
	"git.lost.host/meutraa/bowl/internal/theme"
)

const (
	frameWidth = 8  // "   | X |"
	tenthWidth = 12 // " X | X | X |"

	// Width is the number of columns the score sheet needs
	Width = frameWidth*(game.FrameCount-1) + tenthWidth
)

// DefaultRenderer draws an ASCII score sheet, one box per shot and the
// running total under each frame.
type DefaultRenderer struct {
	Theme theme.Theme

	buffer strings.Builder
}

func (r *DefaultRenderer) Render(w io.Writer, g *game.Game, result score.Result) error {
	r.buffer.Reset()

	r.line(strings.Repeat("_", Width))
	for i := 0; i < g.Len(); i++ {
		r.fillShots(g.Frame(i))
	}
	r.line("")

	for i := 0; i < g.Len(); i++ {
		if g.Frame(i).Final() {
			r.buffer.WriteString("   |___|___|")
		} else {
			r.buffer.WriteString("   |___|")
		}
	}
	r.line("")

	for i := 0; i < g.Len(); i++ {
		width := frameWidth
		if g.Frame(i).Final() {
			width = tenthWidth
		}
		r.fillTotal(result.Cumulative[i], width)
	}
	r.line("")

	r.line(strings.Repeat("_______|", game.FrameCount-1) + "___________|")

	return r.flush(w)
}

func (r *DefaultRenderer) fillShots(f game.Frame) {
	marks := f.Marks()
	boxes := make([]string, len(marks))
	wide := make([]bool, len(marks))
	for i, mark := range marks {
		boxes[i] = r.Theme.RenderMark(mark, f.Shot(i))
		// Only an open 10 then 0 frame writes 10 as a number
		wide[i] = mark == game.MarkPins && f.Shot(i) >= game.Pins
	}

	switch {
	case f.Final():
		for len(boxes) < 3 {
			boxes = append(boxes, " ")
			wide = append(wide, false)
		}
		r.box(boxes[0], wide[0])
		r.box(boxes[1], wide[1])
		r.box(boxes[2], wide[2])
	case f.Kind() == game.Strike:
		// The strike is written in the second box
		r.box(" ", false)
		r.box(boxes[0], false)
	default:
		r.box(boxes[0], wide[0])
		r.box(boxes[1], wide[1])
	}
}

// box writes a three column box. Two column content takes the leading space.
func (r *DefaultRenderer) box(content string, wide bool) {
	if !wide {
		r.buffer.WriteString(" ")
	}
	r.buffer.WriteString(content)
	r.buffer.WriteString(" |")
}

// fillTotal left aligns the total inside a box width columns wide
func (r *DefaultRenderer) fillTotal(total int, width int) {
	text := "  " + strconv.FormatInt(int64(total), 10)
	if pad := width - 1 - len(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	r.buffer.WriteString(text)
	r.buffer.WriteString("|")
}

func (r *DefaultRenderer) line(message string) {
	r.buffer.WriteString(message)
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) flush(w io.Writer) error {
	_, err := io.WriteString(w, r.buffer.String())
	r.buffer.Reset()
	return err
}
