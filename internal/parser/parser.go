package parser

// Parser turns one line of typed input into pin counts, one per shot.
type Parser interface {
	Parse(line string) ([]int, error)
}
