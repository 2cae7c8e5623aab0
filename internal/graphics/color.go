package graphics

// Color is a 24 bit terminal colour
type Color struct {
	R, G, B uint8
}
