package field

import (
	"io"
	"math/rand"
	"testing"

	"minesweeper/pkg/engine/logging"
)

func init() {
	logging.Log.SetOutput(io.Discard)
}

// scriptedSource replays a fixed sequence of values, wrapping around.
// Each value is reduced modulo n so scripts stay in range.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// newSeededGrid builds a grid with a deterministic math/rand source.
func newSeededGrid(t *testing.T, rows, cols, mines int, seed int64) *Grid {
	t.Helper()
	return NewGridWithSource(rows, cols, mines, rand.New(rand.NewSource(seed)))
}

// minePositions lists the positions of all mine squares in row-major order.
func minePositions(g *Grid) []Position {
	var mines []Position
	g.ForEachSquare(func(pos Position, sq *Square) {
		if sq.Kind() == KindMine {
			mines = append(mines, pos)
		}
	})
	return mines
}

// revealAllSafe reveals every unrevealed empty square in row-major order and
// returns the result of the last reveal that was issued.
func revealAllSafe(t *testing.T, g *Grid) bool {
	t.Helper()
	last := false
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			sq, err := g.Square(Pos(row, col))
			if err != nil {
				t.Fatalf("Square(%d,%d) error: %v", row, col, err)
			}
			if sq.IsRevealed() || sq.IsGameOver() {
				continue
			}
			over, err := g.Reveal(Pos(row, col))
			if err != nil {
				t.Fatalf("Reveal(%d,%d) error: %v", row, col, err)
			}
			last = over
		}
	}
	return last
}
