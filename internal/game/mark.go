package game

// Mark is how a single shot is written on a score sheet.
type Mark uint8

const (
	MarkPins   Mark = iota // A pin count
	MarkGutter             // No pins
	MarkStrike             // A full rack on the first ball
	MarkSpare              // Finishing a rack on the second ball
)

// Marks classifies every shot of the frame. A fresh rack is set after a
// strike or after two balls, which only matters inside the tenth frame. A
// regular frame of 10 then 0 is open and its 10 is written as a pin count.
func (f Frame) Marks() []Mark {
	marks := make([]Mark, len(f.shots))
	fresh := true
	previous := 0
	for i, shot := range f.shots {
		switch {
		case fresh && IsStrike(shot) && f.kind != Open:
			marks[i] = MarkStrike
		case !fresh && IsSpare(previous, shot):
			marks[i] = MarkSpare
			fresh = true
		case shot == 0:
			marks[i] = MarkGutter
			fresh, previous = !fresh, shot
		default:
			marks[i] = MarkPins
			fresh, previous = !fresh, shot
		}
	}
	return marks
}
