package renderer

import (
	"minesweeper/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHidden
	StyleFlag
	StyleMine
	StyleExploded
	StyleEmpty
	StyleSubtle
	StyleAction
	StyleWon
	StyleLost
	StyleLastMove
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: board, status line,
	// help, messages and the input prompt
	RenderFrame(s *state.Session)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
