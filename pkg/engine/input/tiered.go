package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Board
	ActionReveal
	ActionFlag

	// Meta
	ActionReset
	ActionDump
	ActionHelp
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
// Args carries the remaining words of the command, e.g. the position.
type Intent struct {
	Action Action
	Args   []string
}

// RawInput is the event emitted directly from an input device.
// For the terminal, Code is the whole typed line.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the normalized form of a RawInput: lower-cased and
// trimmed.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a normalized event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps command words to actions.
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"reveal": ActionReveal,
	"r":      ActionReveal,
	"open":   ActionReveal,
	"o":      ActionReveal,

	"flag": ActionFlag,
	"f":    ActionFlag,

	"reset": ActionReset,
	"new":   ActionReset,
	"n":     ActionReset,

	"dump": ActionDump,

	"help": ActionHelp,
	"?":    ActionHelp,
	"h":    ActionHelp,

	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// MapToIntent applies the bindings to the first word of the input and keeps
// the rest as arguments. A command that starts with a number is read as a
// reveal, so "3 4" opens row 3, column 4.
func MapToIntent(ev DebouncedInput) Intent {
	words := strings.Fields(strings.ReplaceAll(ev.Code, ",", " "))
	if len(words) == 0 {
		return Intent{Action: ActionNone}
	}

	if act, ok := bindings[words[0]]; ok {
		return Intent{Action: act, Args: words[1:]}
	}
	if startsWithDigit(words[0]) {
		return Intent{Action: ActionReveal, Args: words}
	}
	return Intent{Action: ActionNone, Args: words}
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionReset:
		return "New Game"
	case ActionDump:
		return "Dump Field"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
