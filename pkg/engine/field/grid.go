package field

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"minesweeper/pkg/engine/logging"
)

// Defaults used when constructor arguments are out of range
const (
	DefaultRows    = 8
	DefaultColumns = 8
	DefaultMines   = 10
)

// Grid owns the squares of one game and enforces its rules.
//
// Squares live in a row-major arena; neighbor links are arena indices, so the
// cyclic adjacency graph has a single owner. Mines are placed on the first
// Reveal, away from the revealed position.
type Grid struct {
	squares []Square
	rows    int
	cols    int
	mines   int

	gameOver    bool
	wonByPlayer bool
	initiated   bool

	// positions already used by random placement, cleared on reset
	occupied mapset.Set[Position]

	rng Source
}

// NewGrid creates an all-empty grid seeded from the clock.
// Negative or zero dimensions fall back to 8x8, a negative mine count to 10,
// and a mine count larger than the grid is clamped to the number of squares.
func NewGrid(rows, cols, mines int) *Grid {
	return NewGridWithSource(rows, cols, mines, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGridWithSource is NewGrid with an explicit random source, for
// reproducible layouts
func NewGridWithSource(rows, cols, mines int, src Source) *Grid {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultColumns
	}
	if mines < 0 {
		mines = DefaultMines
	}
	if mines > rows*cols {
		mines = rows * cols
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Grid{
		squares: make([]Square, rows*cols),
		rows:    rows,
		cols:    cols,
		mines:   mines,
		rng:     src,
	}
	g.Reset()
	return g
}

// Build is the game facade: it substitutes the default mine count for a
// negative one and forwards to NewGrid
func Build(rows, cols, mines int) *Grid {
	if mines < 0 {
		mines = DefaultMines
	}
	return NewGrid(rows, cols, mines)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns in the grid
func (g *Grid) Columns() int {
	return g.cols
}

// Mines returns the number of mines the grid holds once initiated
func (g *Grid) Mines() int {
	return g.mines
}

// IsGameOver returns true once the game has been won or lost
func (g *Grid) IsGameOver() bool {
	return g.gameOver
}

// IsWonByPlayer returns true if every safe square was revealed
func (g *Grid) IsWonByPlayer() bool {
	return g.wonByPlayer
}

// HasInitiated returns true once mines have been placed
func (g *Grid) HasInitiated() bool {
	return g.initiated
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

func (g *Grid) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

func (g *Grid) positionAt(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

func invalidPosition(pos Position) error {
	return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
}

// Square returns the square at pos. The pointer stays valid for the life of
// the grid, across resets and mine placement.
func (g *Grid) Square(pos Position) (*Square, error) {
	if !g.IsValidPosition(pos) {
		return nil, invalidPosition(pos)
	}
	return &g.squares[g.index(pos)], nil
}

// PositionOf finds the position of a square returned by Square
func (g *Grid) PositionOf(sq *Square) (Position, bool) {
	if sq == nil {
		return Position{}, false
	}
	for idx := range g.squares {
		if &g.squares[idx] == sq {
			return g.positionAt(idx), true
		}
	}
	return Position{}, false
}

// Snapshot returns a detached rows x columns copy of the squares for rendering
func (g *Grid) Snapshot() [][]Square {
	snapshot := make([][]Square, g.rows)
	for row := 0; row < g.rows; row++ {
		snapshot[row] = make([]Square, g.cols)
		for col := 0; col < g.cols; col++ {
			sq := g.squares[g.index(Position{Row: row, Col: col})]
			sq.neighbors = append([]int(nil), sq.neighbors...)
			snapshot[row][col] = sq
		}
	}
	return snapshot
}

// ForEachSquare calls fn for every square in row-major order
func (g *Grid) ForEachSquare(fn func(pos Position, sq *Square)) {
	for idx := range g.squares {
		fn(g.positionAt(idx), &g.squares[idx])
	}
}

// NumberOfSquares counts squares, optionally only those of the given kinds
func (g *Grid) NumberOfSquares(kinds ...Kind) int {
	if len(kinds) == 0 {
		return len(g.squares)
	}

	count := 0
	for idx := range g.squares {
		for _, k := range kinds {
			if g.squares[idx].kind == k {
				count++
				break
			}
		}
	}
	return count
}

// AllRevealed returns true if every square that does not end the game is revealed
func (g *Grid) AllRevealed() bool {
	for idx := range g.squares {
		sq := &g.squares[idx]
		if !sq.IsGameOver() && !sq.IsRevealed() {
			return false
		}
	}
	return true
}

// FlagCount returns the number of flagged squares
func (g *Grid) FlagCount() int {
	count := 0
	for idx := range g.squares {
		if g.squares[idx].flagged {
			count++
		}
	}
	return count
}

// Reset refills the grid with empty squares and clears all game state
func (g *Grid) Reset() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			pos := Position{Row: row, Col: col}
			// explicit in-range position, cannot fail
			_, _ = g.AddSquare(NewSquare(KindEmpty), &pos, false, nil)
		}
	}
	g.BuildAdjacency()

	g.gameOver = false
	g.wonByPlayer = false
	g.initiated = false
	g.occupied = mapset.New[Position]()
}

// AddSquare writes sq into the grid and returns where it went.
//
// With pos nil the position is drawn at random, never reusing an earlier
// random position and staying clear of avoid when given. fixAdjacency
// rebuilds every neighbor list afterwards; batch callers pass false and call
// BuildAdjacency once at the end.
func (g *Grid) AddSquare(sq Square, pos *Position, fixAdjacency bool, avoid *Position) (Position, error) {
	var target Position
	if pos != nil {
		if !g.IsValidPosition(*pos) {
			return Position{}, invalidPosition(*pos)
		}
		target = *pos
	} else {
		target = g.nextRandomPosition(avoid)
	}

	sq.neighbors = nil
	g.squares[g.index(target)] = sq

	if fixAdjacency {
		g.BuildAdjacency()
	}
	return target, nil
}

// Reveal reveals the square at pos and reports whether the game is over.
//
// The first call places the mines away from pos. Revealing the last safe
// square wins the game; revealing a mine loses it. Errors leave the grid
// untouched.
func (g *Grid) Reveal(pos Position) (bool, error) {
	if g.gameOver {
		return false, fmt.Errorf("%w: cannot reveal %v", ErrGameOver, pos)
	}
	if !g.IsValidPosition(pos) {
		return false, invalidPosition(pos)
	}

	if !g.initiated {
		g.placeMines(g.mines, &pos)
		g.initiated = true
	}

	idx := g.index(pos)
	if g.squares[idx].IsRevealed() {
		return false, fmt.Errorf("%w: %v", ErrAlreadyRevealed, pos)
	}

	gameOver, revealed, err := g.revealFrom(idx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", err, pos)
	}
	g.gameOver = gameOver

	if !g.gameOver && g.AllRevealed() {
		g.wonByPlayer = true
		g.gameOver = true
	}

	entry := logging.Log.WithFields(logrus.Fields{
		"position": pos.String(),
		"revealed": revealed,
	})
	switch {
	case g.wonByPlayer:
		entry.Debug("last safe square revealed, game won")
	case g.gameOver:
		entry.Debug("mine revealed, game lost")
	default:
		entry.Debug("revealed")
	}

	return g.gameOver, nil
}

// ToggleFlag flags or unflags the unrevealed square at pos
func (g *Grid) ToggleFlag(pos Position) error {
	sq, err := g.Square(pos)
	if err != nil {
		return err
	}
	if err := sq.ToggleFlag(); err != nil {
		return fmt.Errorf("%w: %v", err, pos)
	}
	return nil
}
