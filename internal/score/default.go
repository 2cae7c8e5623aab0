package score

import (
	"git.lost.host/meutraa/bowl/internal/game"
	"github.com/rs/zerolog/log"
)

type DefaultScorer struct{}

func (s *DefaultScorer) Score(g *game.Game) Result {
	return s.ScoreFrames(g.Frames())
}

func (s *DefaultScorer) ScoreFrames(frames []game.Frame) Result {
	result := Result{
		Frames:     make([]int, len(frames)),
		Cumulative: make([]int, len(frames)),
	}
	for i, frame := range frames {
		score := s.frameScore(frames, i)
		result.Total += score
		result.Frames[i] = score
		result.Cumulative[i] = result.Total

		log.Debug().
			Int("frame", i+1).
			Ints("shots", frame.Shots()).
			Stringer("kind", frame.Kind()).
			Int("score", score).
			Int("total", result.Total).
			Msg("scored frame")
	}
	return result
}

func (s *DefaultScorer) frameScore(frames []game.Frame, i int) int {
	switch frames[i].Kind() {
	case game.Strike:
		return game.Pins + s.bonusRoll(frames, i, 0) + s.bonusRoll(frames, i, 1)
	case game.Spare:
		return game.Pins + s.bonusRoll(frames, i, 0)
	}
	// Open, and the tenth frame whose bonus rolls are its own shots
	return frames[i].PinsKnockedDown()
}

// bonusRoll returns roll index of the shots bowled after frame i, walking
// forward across frame boundaries. A roll past the last frame counts zero.
func (s *DefaultScorer) bonusRoll(frames []game.Frame, i, index int) int {
	for next := i + 1; next < len(frames); next++ {
		frame := frames[next]
		if index < frame.Len() {
			return frame.Shot(index)
		}
		index -= frame.Len()
	}
	return 0
}
