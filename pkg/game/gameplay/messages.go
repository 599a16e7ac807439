package gameplay

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is gotext.Get behind a function variable, avoiding go vet's
// non-constant format string check for catalog keys looked up at runtime.
var dynamicGet = gotext.Get

// message looks up key in the catalog and fills the translation's verbs
// with args. A key missing from the catalog comes back as the key followed
// by its arguments.
func message(key string, args ...any) string {
	format := dynamicGet(key)
	if len(args) == 0 {
		return format
	}
	if format == key {
		return strings.TrimSpace(fmt.Sprintln(append([]any{key}, args...)...))
	}
	return fmt.Sprintf(format, args...)
}
