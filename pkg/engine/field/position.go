package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Position addresses a square by zero-based row and column.
// It is only meaningful relative to a specific Grid.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "row,col"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Pair returns the position as a two-element [row, col] slice
func (p Position) Pair() []int {
	return []int{p.Row, p.Col}
}

// Step returns the position one square away in the given direction
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// PositionFromPair converts a [row, col] pair into a Position.
// Any other shape is rejected with ErrInvalidPosition.
func PositionFromPair(pair []int) (Position, error) {
	if len(pair) != 2 {
		return Position{}, fmt.Errorf("%w: want [row col], got %v", ErrInvalidPosition, pair)
	}
	return Position{Row: pair[0], Col: pair[1]}, nil
}

// ParsePosition parses "row,col" or "row col". Non-numeric input is
// rejected with ErrInvalidPosition; bounds are checked by the Grid.
func ParsePosition(s string) (Position, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("%w: row %q is not a number", ErrInvalidPosition, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("%w: column %q is not a number", ErrInvalidPosition, fields[1])
	}

	return Position{Row: row, Col: col}, nil
}

// ChebyshevDistance returns the chessboard distance between two positions.
// Distance 1 covers a square's eight neighbors.
func ChebyshevDistance(a, b Position) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
