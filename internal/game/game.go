package game

// Game owns the ten frames of a completed game in play order.
type Game struct {
	frames []Frame
}

// NewGame checks that frames hold exactly FrameCount frames, with only the
// last one built as a tenth frame.
func NewGame(frames []Frame) (*Game, error) {
	if len(frames) != FrameCount {
		return nil, ErrInvalidGame
	}
	for i, f := range frames {
		if f.Final() != (i == FrameCount-1) {
			return nil, ErrInvalidGame
		}
	}
	fs := make([]Frame, len(frames))
	copy(fs, frames)
	return &Game{frames: fs}, nil
}

func (g *Game) Len() int {
	return len(g.frames)
}

func (g *Game) Frame(i int) Frame {
	return g.frames[i]
}

// Frames returns a copy of the frame sequence
func (g *Game) Frames() []Frame {
	fs := make([]Frame, len(g.frames))
	copy(fs, g.frames)
	return fs
}

func (g *Game) Next(i int) (Frame, bool) {
	if i+1 < 0 || i+1 >= len(g.frames) {
		return Frame{}, false
	}
	return g.frames[i+1], true
}

func (g *Game) Previous(i int) (Frame, bool) {
	if i-1 < 0 || i-1 >= len(g.frames) {
		return Frame{}, false
	}
	return g.frames[i-1], true
}
