package parser

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/bowl/internal/game"
	"github.com/pkg/errors"
)

var (
	ErrEmpty        = errors.New("no shots entered")
	ErrInvalidToken = errors.New("invalid shot")
	ErrInvalidSpare = errors.New("a spare must follow a number of pins")
)

// DefaultParser reads whitespace separated shots.
//
//	X or x  strike, 10 pins
//	/       spare, the pins left by the previous shot
//	-       gutter, 0 pins
//	0-10    pin count
//
// Range and frame rules are left to game.NewFrame.
type DefaultParser struct{}

func (p *DefaultParser) Parse(line string) ([]int, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	shots := make([]int, len(tokens))
	// Whether the previous token was a plain pin count that a "/" can finish
	spareable := false
	for i, token := range tokens {
		switch {
		case strings.EqualFold(token, "x"):
			shots[i] = game.Pins
			spareable = false
		case token == "/":
			if !spareable {
				return nil, errors.Wrapf(ErrInvalidSpare, "shot %v", i+1)
			}
			shots[i] = game.Pins - shots[i-1]
			spareable = false
		case token == "-":
			shots[i] = 0
			spareable = true
		default:
			pins, err := strconv.Atoi(token)
			if nil != err {
				return nil, errors.Wrapf(ErrInvalidToken, "%q", token)
			}
			shots[i] = pins
			spareable = pins >= 0 && pins < game.Pins
		}
	}
	return shots, nil
}
