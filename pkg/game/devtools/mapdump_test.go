package devtools

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minesweeper/pkg/engine/field"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/state"
)

func init() {
	logging.Log.SetOutput(io.Discard)
}

// cornerMineSession returns a 3x3 session with a single mine in the
// bottom-right corner and the top-left square revealed.
func cornerMineSession(t *testing.T) *state.Session {
	t.Helper()
	g := field.NewGrid(3, 3, 0)
	corner := field.Pos(2, 2)
	if _, err := g.AddSquare(field.NewSquare(field.KindMine), &corner, true, nil); err != nil {
		t.Fatalf("AddSquare: %v", err)
	}
	if err := g.ToggleFlag(field.Pos(2, 2)); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if _, err := g.Reveal(field.Pos(0, 0)); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	return state.NewSession(g, 42)
}

func TestWriteFieldDump_Sections(t *testing.T) {
	s := cornerMineSession(t)

	var buf bytes.Buffer
	if err := WriteFieldDump(&buf, s); err != nil {
		t.Fatalf("WriteFieldDump error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"session: " + s.ID,
		"seed: 42",
		"grid_rows: 3",
		"flags: 1",
		"--- Revealed map ---\n...\n.11\n.1F\n",
		"--- Full map ---\n...\n.11\n.1*\n",
		"mine: 2,2 revealed=false flagged=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestWriteFieldDump_BeforeFirstReveal(t *testing.T) {
	s := state.NewSession(field.NewGrid(2, 2, 1), 1)

	var buf bytes.Buffer
	if err := WriteFieldDump(&buf, s); err != nil {
		t.Fatalf("WriteFieldDump error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "status: not_started") {
		t.Errorf("dump missing not_started status\n%s", out)
	}
	if strings.Contains(out, "--- Mines ---") {
		t.Errorf("dump lists mines before placement\n%s", out)
	}
}

func TestWriteFieldDump_NoGrid(t *testing.T) {
	if err := WriteFieldDump(io.Discard, &state.Session{}); err == nil {
		t.Error("WriteFieldDump(no grid) error = nil, want error")
	}
}

func TestDumpFieldToFile(t *testing.T) {
	s := cornerMineSession(t)
	path := filepath.Join(t.TempDir(), DumpFilename(s))

	got, err := DumpFieldToFile(s, path)
	if err != nil {
		t.Fatalf("DumpFieldToFile error: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.HasPrefix(string(data), "=== FIELD DUMP ===") {
		t.Errorf("dump starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}
