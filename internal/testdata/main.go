package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/bowl/internal/game"
)

// ScoredGame is a complete game with the per-frame scores it should produce.
type ScoredGame struct {
	Name   string  `json:"name"`
	Frames [][]int `json:"frames"`
	Scores []int   `json:"scores"`
	Total  int     `json:"total"`
}

// Build validates the fixture's frames into a game.
func (s *ScoredGame) Build() (*game.Game, error) {
	frames := make([]game.Frame, len(s.Frames))
	for i, shots := range s.Frames {
		f, err := game.NewFrame(shots, i == len(s.Frames)-1)
		if nil != err {
			return nil, err
		}
		frames[i] = f
	}
	return game.NewGame(frames)
}

func GetGames() ([]ScoredGame, error) {
	var games []ScoredGame
	if err := json.Unmarshal([]byte(data), &games); nil != err {
		return nil, err
	}
	return games, nil
}

const data = `[
  {
    "name": "perfect",
    "frames": [[10],[10],[10],[10],[10],[10],[10],[10],[10],[10,10,10]],
    "scores": [30,30,30,30,30,30,30,30,30,30],
    "total": 300
  },
  {
    "name": "gutter",
    "frames": [[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0]],
    "scores": [0,0,0,0,0,0,0,0,0,0],
    "total": 0
  },
  {
    "name": "all nines",
    "frames": [[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0],[9,0]],
    "scores": [9,9,9,9,9,9,9,9,9,9],
    "total": 90
  },
  {
    "name": "all fives",
    "frames": [[5,5],[5,5],[5,5],[5,5],[5,5],[5,5],[5,5],[5,5],[5,5],[5,5,5]],
    "scores": [15,15,15,15,15,15,15,15,15,15],
    "total": 150
  },
  {
    "name": "dutch",
    "frames": [[10],[4,6],[10],[4,6],[10],[4,6],[10],[4,6],[10],[4,6,10]],
    "scores": [20,20,20,20,20,20,20,20,20,20],
    "total": 200
  },
  {
    "name": "mixed",
    "frames": [[10],[7,3],[9,0],[10],[0,8],[8,2],[0,6],[10],[10],[10,8,1]],
    "scores": [20,19,9,18,8,10,6,30,28,19],
    "total": 167
  },
  {
    "name": "ninth strike into tenth",
    "frames": [[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[10],[10,5,3]],
    "scores": [0,0,0,0,0,0,0,0,25,18],
    "total": 43
  },
  {
    "name": "spare then open",
    "frames": [[5,5],[3,4],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0]],
    "scores": [13,7,0,0,0,0,0,0,0,0],
    "total": 20
  },
  {
    "name": "strike then open",
    "frames": [[10],[4,3],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0],[0,0]],
    "scores": [17,7,0,0,0,0,0,0,0,0],
    "total": 24
  },
  {
    "name": "gutter spares",
    "frames": [[0,10],[0,10],[0,10],[0,10],[0,10],[0,10],[0,10],[0,10],[0,10],[0,10,0]],
    "scores": [10,10,10,10,10,10,10,10,10,10],
    "total": 100
  }
]`
