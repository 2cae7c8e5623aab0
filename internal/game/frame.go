package game

const (
	Pins       = 10 // Pins standing at the start of a rack
	FrameCount = 10
)

type Kind uint8

const (
	Open Kind = iota
	Strike
	Spare
	Tenth
)

func (k Kind) String() string {
	switch k {
	case Strike:
		return "strike"
	case Spare:
		return "spare"
	case Tenth:
		return "tenth"
	}
	return "open"
}

// Frame is one validated turn. The shots and kind are fixed at construction.
type Frame struct {
	shots []int
	kind  Kind
}

// NewFrame validates shots against the rules for a regular frame, or for the
// tenth frame when final is set, and classifies the result.
func NewFrame(shots []int, final bool) (Frame, error) {
	s := make([]int, len(shots))
	copy(s, shots)

	for _, shot := range s {
		if shot < 0 || shot > Pins {
			err := invalid(ErrInvalidShotValue, s, final)
			if final {
				err.Also = []error{ErrInvalidTenthFrame}
			}
			return Frame{}, err
		}
	}

	var err error
	if final {
		err = validateTenth(s)
	} else {
		err = validateRegular(s)
	}
	if nil != err {
		return Frame{}, err
	}

	return Frame{shots: s, kind: kindOf(s, final)}, nil
}

func validateRegular(s []int) error {
	switch len(s) {
	case 1:
		if !IsStrike(s[0]) {
			return invalid(ErrInvalidFrameShotCount, s, false)
		}
	case 2:
		if s[0]+s[1] > Pins {
			return invalid(ErrInvalidFrameSum, s, false)
		}
	default:
		return invalid(ErrInvalidFrameShotCount, s, false)
	}
	return nil
}

func validateTenth(s []int) error {
	switch len(s) {
	case 2:
		// A strike or spare earns a third shot, so it cannot end here
		if s[0]+s[1] >= Pins {
			return invalid(ErrInvalidTenthFrame, s, true)
		}
	case 3:
		first, second, third := s[0], s[1], s[2]
		if first+second < Pins {
			return invalid(ErrInvalidTenthFrame, s, true)
		}
		// Without a strike the first two shots share one rack
		if !IsStrike(first) && first+second > Pins {
			return invalid(ErrInvalidTenthFrame, s, true)
		}
		// Strike then a non-strike leaves a rack for the third shot to finish
		if IsStrike(first) && !IsStrike(second) && second+third > Pins {
			return invalid(ErrInvalidTenthFrame, s, true)
		}
	default:
		return invalid(ErrInvalidTenthFrame, s, true)
	}
	return nil
}

func kindOf(s []int, final bool) Kind {
	if final {
		return Tenth
	}
	if len(s) == 1 && IsStrike(s[0]) {
		return Strike
	}
	if len(s) == 2 && IsSpare(s[0], s[1]) {
		return Spare
	}
	return Open
}

func IsStrike(roll int) bool {
	return roll == Pins
}

// IsSpare requires a non-zero second roll, so a lone strike is never a spare.
func IsSpare(roll1, roll2 int) bool {
	return roll1+roll2 == Pins && roll2 > 0
}

func (f Frame) Kind() Kind {
	return f.kind
}

func (f Frame) Final() bool {
	return f.kind == Tenth
}

// Len is the number of shots in the frame
func (f Frame) Len() int {
	return len(f.shots)
}

func (f Frame) Shot(i int) int {
	return f.shots[i]
}

// Shots returns a copy of the frame's shots.
func (f Frame) Shots() []int {
	s := make([]int, len(f.shots))
	copy(s, f.shots)
	return s
}

func (f Frame) PinsKnockedDown() int {
	sum := 0
	for _, shot := range f.shots {
		sum += shot
	}
	return sum
}
