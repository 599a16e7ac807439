package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal or its size is unknown
const DefaultWidth = 80

// Width returns the column count of the terminal on stdout. Piped output
// gets DefaultWidth so frames written to files stay a fixed size.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	return widthOrDefault(width, err)
}

func widthOrDefault(width int, err error) int {
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal. Piped sessions skip screen clearing.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
