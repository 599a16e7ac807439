// Package field implements the minesweeper rules engine: squares, their
// adjacency, lazy first-click-safe mine placement, flood-fill reveal and
// win/loss detection.
//
// A Grid is not safe for concurrent use. Callers that share a Grid between
// goroutines must serialize access themselves.
package field

import (
	"fmt"
)

// Kind tags a square as empty or mine-bearing
type Kind int

// Square kinds
const (
	KindEmpty Kind = iota
	KindMine
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMine:
		return "mine"
	default:
		return "unknown"
	}
}

// Square is a single cell of the grid.
//
// A square starts unrevealed and unflagged. The flag may be toggled while the
// square is unrevealed; revealing is final and clears the flag.
type Square struct {
	kind     Kind
	revealed bool
	flagged  bool

	// neighbors holds arena indices of the adjacent squares in probe order.
	// The owning Grid rebuilds it after every structural change.
	neighbors []int
}

// NewSquare creates an unrevealed, unflagged square of the given kind
func NewSquare(kind Kind) Square {
	return Square{kind: kind}
}

// Kind returns whether the square is empty or a mine
func (s *Square) Kind() Kind {
	return s.kind
}

// IsRevealed returns true once the square has been revealed
func (s *Square) IsRevealed() bool {
	return s.revealed
}

// IsFlagged returns true if the player has flagged the square
func (s *Square) IsFlagged() bool {
	return s.flagged
}

// IsGameOver returns true if revealing this square loses the game
func (s *Square) IsGameOver() bool {
	return s.kind == KindMine
}

// IsAutoRevealable returns true if flood fill may reveal this square
func (s *Square) IsAutoRevealable() bool {
	return s.kind == KindEmpty
}

// NeighborCount returns the number of adjacent squares (0-8)
func (s *Square) NeighborCount() int {
	return len(s.neighbors)
}

// ToggleFlag flips the flag of an unrevealed square
func (s *Square) ToggleFlag() error {
	if s.revealed {
		return ErrAlreadyRevealed
	}
	s.flagged = !s.flagged
	return nil
}

// String returns "empty" or "mine"
func (s *Square) String() string {
	return s.kind.String()
}

// reveal marks the square revealed and reports whether it ends the game.
// Propagation to neighbors is driven by the Grid, which owns the arena.
func (s *Square) reveal() (bool, error) {
	if s.revealed {
		return false, ErrAlreadyRevealed
	}
	s.revealed = true
	s.flagged = false
	return s.IsGameOver(), nil
}

func (s *Square) setNeighbors(neighbors []int) {
	s.neighbors = neighbors
}

// GoString is used by %#v in test failures and dumps
func (s *Square) GoString() string {
	return fmt.Sprintf("Square{kind: %v, revealed: %v, flagged: %v, neighbors: %d}",
		s.kind, s.revealed, s.flagged, len(s.neighbors))
}
