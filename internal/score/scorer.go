package score

import (
	"git.lost.host/meutraa/bowl/internal/game"
)

type Scorer interface {
	// Score a completed game
	Score(g *game.Game) Result

	// ScoreFrames scores frames in play order. Bonus rolls that have not been
	// bowled yet count as zero.
	ScoreFrames(frames []game.Frame) Result
}

// Result holds scores by frame position.
type Result struct {
	Frames     []int // The score earned by each frame
	Cumulative []int // Running total up to and including each frame
	Total      int
}
