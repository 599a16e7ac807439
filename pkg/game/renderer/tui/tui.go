package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/engine/field"
	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Icon constants for the board
const (
	IconHidden    = "■"
	IconFlag      = "F"
	IconWrongFlag = "X" // flag on a safe square, shown after a loss
	IconMine      = "*"
	IconEmpty     = "·"
)

// helpOrder is the order actions are listed in the help pane
var helpOrder = []input.Action{
	input.ActionReveal,
	input.ActionFlag,
	input.ActionReset,
	input.ActionDump,
	input.ActionHelp,
	input.ActionQuit,
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorHidden   color.Style
	colorFlag     color.Style
	colorMine     color.Style
	colorExploded color.Style
	colorSubtle   color.Style
	colorAction   color.Style
	colorWon      color.Style
	colorLost     color.Style
	colorLastMove color.Style

	// indexed by adjacent mine count
	colorNumbers [9]color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorHidden = color.Style{color.FgGray}
	t.colorFlag = color.Style{color.FgYellow, color.OpBold}
	t.colorMine = color.Style{color.FgRed, color.OpBold}
	t.colorExploded = color.Style{color.FgWhite, color.BgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorWon = color.Style{color.FgGreen, color.OpBold}
	t.colorLost = color.Style{color.FgRed, color.OpBold}
	t.colorLastMove = color.Style{color.OpUnderscore}

	t.colorNumbers = [9]color.Style{
		{color.FgGray},
		{color.FgBlue},
		{color.FgGreen},
		{color.FgRed},
		{color.FgMagenta},
		{color.FgYellow},
		{color.FgCyan},
		{color.FgWhite, color.OpBold},
		{color.FgGray, color.OpBold},
	}
}

// Clear clears the terminal screen. Piped output is left alone.
func (t *TUIRenderer) Clear() {
	if !terminal.IsInteractive() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHidden:
		return t.colorHidden.Sprint(text)
	case renderer.StyleFlag:
		return t.colorFlag.Sprint(text)
	case renderer.StyleMine:
		return t.colorMine.Sprint(text)
	case renderer.StyleExploded:
		return t.colorExploded.Sprint(text)
	case renderer.StyleEmpty, renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleWon:
		return t.colorWon.Sprint(text)
	case renderer.StyleLost:
		return t.colorLost.Sprint(text)
	case renderer.StyleLastMove:
		return t.colorLastMove.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	fmt.Fprint(t.out, t.Frame(s))
}

// Frame returns the complete frame RenderFrame would print. It holds the
// session lock while reading.
func (t *TUIRenderer) Frame(s *state.Session) string {
	s.Lock()
	defer s.Unlock()

	var b strings.Builder

	g := s.Grid
	b.WriteString(t.colorAction.Sprintf("Minesweeper %dx%d\n\n", g.Rows(), g.Columns()))
	b.WriteString(t.Board(s))
	b.WriteString("\n")
	b.WriteString(t.statusLine(s))
	b.WriteString("\n")

	if s.ShowHelp {
		b.WriteString(t.helpPane())
	}
	b.WriteString(t.messagesPane(s))

	b.WriteString(t.colorSubtle.Sprint(gotext.Get("PROMPT_HINT")))
	b.WriteString("\n> ")
	return b.String()
}

// Board returns the grid with row and column labels.
// The caller holds the session lock.
func (t *TUIRenderer) Board(s *state.Session) string {
	var b strings.Builder

	g := s.Grid
	rowWidth := len(strconv.Itoa(g.Rows() - 1))
	cellWidth := len(strconv.Itoa(g.Columns()-1)) + 1

	b.WriteString(strings.Repeat(" ", rowWidth+2))
	for col := 0; col < g.Columns(); col++ {
		b.WriteString(t.colorSubtle.Sprintf("%*d", cellWidth, col))
	}
	b.WriteString("\n")

	for row := 0; row < g.Rows(); row++ {
		b.WriteString(t.colorSubtle.Sprintf("%*d |", rowWidth, row))
		for col := 0; col < g.Columns(); col++ {
			pos := field.Pos(row, col)
			sq, err := g.Square(pos)
			if err != nil {
				continue
			}
			glyph := t.renderSquare(g, pos, sq)
			if s.IsLastMove(pos) {
				glyph = t.StyleText(glyph, renderer.StyleLastMove)
			}
			b.WriteString(strings.Repeat(" ", cellWidth-1))
			b.WriteString(glyph)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSquare returns the styled glyph for one square. Once the game is
// lost every mine and every wrong flag is shown; on a win the remaining
// mines are shown as flags.
func (t *TUIRenderer) renderSquare(g *field.Grid, pos field.Position, sq *field.Square) string {
	lost := g.IsGameOver() && !g.IsWonByPlayer()

	switch {
	case sq.IsFlagged():
		if lost && !sq.IsGameOver() {
			return t.StyleText(IconWrongFlag, renderer.StyleMine)
		}
		return t.StyleText(IconFlag, renderer.StyleFlag)
	case !sq.IsRevealed():
		if sq.IsGameOver() && lost {
			return t.StyleText(IconMine, renderer.StyleMine)
		}
		if sq.IsGameOver() && g.IsWonByPlayer() {
			return t.StyleText(IconFlag, renderer.StyleFlag)
		}
		return t.StyleText(IconHidden, renderer.StyleHidden)
	case sq.IsGameOver():
		return t.StyleText(IconMine, renderer.StyleExploded)
	}

	n, err := g.AdjacentMines(pos)
	if err != nil || n == 0 {
		return t.StyleText(IconEmpty, renderer.StyleEmpty)
	}
	return t.colorNumbers[n].Sprint(strconv.Itoa(n))
}

func (t *TUIRenderer) statusLine(s *state.Session) string {
	g := s.Grid

	var status string
	switch {
	case g.IsWonByPlayer():
		status = t.StyleText(gotext.Get("STATUS_WON"), renderer.StyleWon)
	case g.IsGameOver():
		status = t.StyleText(gotext.Get("STATUS_LOST"), renderer.StyleLost)
	case !g.HasInitiated():
		status = t.StyleText(gotext.Get("STATUS_NOT_STARTED"), renderer.StyleSubtle)
	default:
		status = gotext.Get("STATUS_PLAYING")
	}

	return fmt.Sprintf("%s %d   %s %d   %s\n",
		t.colorSubtle.Sprint(gotext.Get("STATUS_MINES")+":"), gameplay.RemainingMines(s),
		t.colorSubtle.Sprint(gotext.Get("STATUS_MOVES")+":"), s.Moves,
		status)
}

func (t *TUIRenderer) helpPane() string {
	var b strings.Builder
	b.WriteString(t.colorSubtle.Sprint(gotext.Get("HELP_TITLE")))
	b.WriteString("\n")

	byAction := input.GetBindingsByAction()
	for _, act := range helpOrder {
		fmt.Fprintf(&b, "- %s: %s\n",
			t.colorAction.Sprint(input.ActionName(act)),
			strings.Join(byAction[act], ", "))
	}
	return b.String()
}

// messagesPane renders the messages log pane
func (t *TUIRenderer) messagesPane(s *state.Session) string {
	var b strings.Builder
	width := terminal.Width()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	b.WriteString("\n")

	if len(s.Messages) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  " + gotext.Get("NO_MESSAGES")))
		b.WriteString("\n")
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(&b, "  %s\n", msg)
		}
	}

	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)))
	b.WriteString("\n")
	return b.String()
}
