package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// LineReader reads one command per line
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r in a buffered command reader
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

var stdinReader *LineReader

// Stdin returns the shared reader over os.Stdin
func Stdin() *LineReader {
	if stdinReader == nil {
		stdinReader = NewLineReader(os.Stdin)
	}
	return stdinReader
}

// ReadLine returns the next line without its line ending.
// A final line without a newline is returned with a nil error; io.EOF is
// returned once no input remains.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadIntent reads a line from the terminal and maps it to an Intent
func (l *LineReader) ReadIntent() (Intent, error) {
	line, err := l.ReadLine()
	if err != nil {
		return Intent{Action: ActionNone}, err
	}
	raw := RawInput{
		Device: DeviceTerminal,
		Code:   line,
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}
