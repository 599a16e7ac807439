package gameplay

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/field"
	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/devtools"
	"minesweeper/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(s *state.Session, intent engineinput.Intent) {
	s.Lock()
	defer s.Unlock()

	sessionLog(s).WithFields(logrus.Fields{
		"action": engineinput.ActionName(intent.Action),
		"args":   strings.Join(intent.Args, " "),
	}).Debug("intent")

	switch intent.Action {
	case engineinput.ActionNone:
		if len(intent.Args) > 0 {
			logMessage(s, message("UNKNOWN_COMMAND", strings.Join(intent.Args, " ")))
		}
		return

	case engineinput.ActionReveal:
		reveal(s, intent.Args)
		return

	case engineinput.ActionFlag:
		toggleFlag(s, intent.Args)
		return

	case engineinput.ActionReset:
		resetGame(s)
		return

	case engineinput.ActionDump:
		path, err := devtools.DumpFieldToFile(s, devtools.DumpFilename(s))
		if err != nil {
			sessionLog(s).WithError(err).Warn("field dump failed")
			logMessage(s, message("DUMP_FAILED", err))
		} else {
			logMessage(s, message("DUMP_SAVED", path))
		}
		return

	case engineinput.ActionHelp:
		s.ShowHelp = !s.ShowHelp
		return

	case engineinput.ActionQuit:
		s.Quit = true
		sessionLog(s).WithField("moves", s.Moves).Info("session ended")
		return
	}

	logMessage(s, message("UNKNOWN_COMMAND", engineinput.ActionName(intent.Action)))
}

func parsePosition(s *state.Session, args []string) (field.Position, bool) {
	pos, err := field.ParsePosition(strings.Join(args, " "))
	if err != nil {
		logMessage(s, message("USAGE_POSITION"))
		return field.Position{}, false
	}
	return pos, true
}

func reveal(s *state.Session, args []string) {
	pos, ok := parsePosition(s, args)
	if !ok {
		return
	}

	if sq, err := s.Grid.Square(pos); err == nil && sq.IsFlagged() && !s.Grid.IsGameOver() {
		logMessage(s, message("SQUARE_FLAGGED", pos.String()))
		return
	}

	gameOver, err := s.Grid.Reveal(pos)
	if err != nil {
		logMessage(s, errorMessage(err, pos))
		return
	}
	s.RecordMove(pos)

	if !gameOver {
		return
	}
	entry := sessionLog(s).WithFields(logrus.Fields{
		"moves":   s.Moves,
		"elapsed": s.Elapsed().Round(time.Second).String(),
	})
	if s.Grid.IsWonByPlayer() {
		entry.Info("game won")
		logMessage(s, message("GAME_WON", s.Moves))
	} else {
		entry.Info("game lost")
		logMessage(s, message("GAME_LOST", pos.String()))
	}
}

func toggleFlag(s *state.Session, args []string) {
	pos, ok := parsePosition(s, args)
	if !ok {
		return
	}
	if s.Grid.IsGameOver() {
		logMessage(s, errorMessage(field.ErrGameOver, pos))
		return
	}

	if err := s.Grid.ToggleFlag(pos); err != nil {
		logMessage(s, errorMessage(err, pos))
		return
	}
	s.RecordMove(pos)

	sq, _ := s.Grid.Square(pos)
	if sq.IsFlagged() {
		logMessage(s, message("FLAG_PLACED", pos.String()))
	} else {
		logMessage(s, message("FLAG_REMOVED", pos.String()))
	}
}

// errorMessage maps an engine error to a message for the player
func errorMessage(err error, pos field.Position) string {
	switch {
	case errors.Is(err, field.ErrInvalidPosition):
		return message("INVALID_POSITION", pos.String())
	case errors.Is(err, field.ErrAlreadyRevealed):
		return message("ALREADY_REVEALED", pos.String())
	case errors.Is(err, field.ErrGameOver):
		return message("GAME_OVER")
	default:
		return message("UNEXPECTED_ERROR", err)
	}
}
