// Package logging holds the shared structured logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Engine code logs at Debug.
var Log = logrus.New()

// Configure sets the minimum level ("debug", "info", "warn", ...) and, when
// out is non-nil, the destination
func Configure(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	if out != nil {
		Log.SetOutput(out)
	}
	return nil
}
