// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minesweeper/pkg/engine/field"
	"minesweeper/pkg/game/state"
)

// DumpFilename returns the default dump file name for a session
func DumpFilename(s *state.Session) string {
	return fmt.Sprintf("field-%s.txt", s.ShortID())
}

// squareSymbol returns the single-character symbol for a square.
// If revealedOnly is true, unrevealed squares return '#' or 'F' when flagged.
func squareSymbol(g *field.Grid, pos field.Position, sq *field.Square, revealedOnly bool) rune {
	if revealedOnly && !sq.IsRevealed() {
		if sq.IsFlagged() {
			return 'F'
		}
		return '#'
	}
	if sq.IsGameOver() {
		return '*'
	}
	n, err := g.AdjacentMines(pos)
	if err != nil || n == 0 {
		return '.'
	}
	return rune('0' + n)
}

func writeMap(w io.Writer, g *field.Grid, revealedOnly bool) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			pos := field.Pos(row, col)
			sq, err := g.Square(pos)
			if err != nil {
				fmt.Fprint(w, "?")
				continue
			}
			fmt.Fprintf(w, "%c", squareSymbol(g, pos, sq, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

func gameStatus(g *field.Grid) string {
	switch {
	case !g.HasInitiated():
		return "not_started"
	case g.IsWonByPlayer():
		return "won"
	case g.IsGameOver():
		return "lost"
	default:
		return "playing"
	}
}

// WriteFieldDump writes a debug dump of the session to w: metadata, legend,
// revealed-only map, full map and the mine list
func WriteFieldDump(w io.Writer, s *state.Session) error {
	if s == nil || s.Grid == nil {
		return fmt.Errorf("no grid")
	}
	g := s.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== FIELD DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.ID)
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Columns())
	fmt.Fprintf(w, "mines: %d\n", g.Mines())
	fmt.Fprintf(w, "flags: %d\n", g.FlagCount())
	fmt.Fprintf(w, "moves: %d\n", s.Moves)
	fmt.Fprintf(w, "status: %s\n", gameStatus(g))
	fmt.Fprintln(w, "coordinate_system: row,col (0-based)")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# hidden, F flagged, * mine, . no adjacent mines, 1-8 adjacent mines")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Revealed map ---")
	writeMap(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Full map ---")
	if !g.HasInitiated() {
		fmt.Fprintln(w, "(mines are placed on the first reveal)")
		return nil
	}
	writeMap(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Mines ---")
	g.ForEachSquare(func(pos field.Position, sq *field.Square) {
		if sq.IsGameOver() {
			fmt.Fprintf(w, "mine: %s revealed=%t flagged=%t\n", pos, sq.IsRevealed(), sq.IsFlagged())
		}
	})
	return nil
}

// DumpFieldToFile writes the dump to path and returns the absolute path
func DumpFieldToFile(s *state.Session, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteFieldDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
