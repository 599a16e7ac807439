// Package gameplay applies player commands to a session.
package gameplay

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/field"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/state"
)

// BuildSession creates a new session from the configuration.
// A zero seed is replaced by one taken from the clock.
func BuildSession(cfg config.Config) *state.Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := field.NewGridWithSource(cfg.Rows, cfg.Columns, cfg.Mines, rand.New(rand.NewSource(seed)))
	s := state.NewSession(grid, seed)

	sessionLog(s).WithFields(logrus.Fields{
		"rows":    grid.Rows(),
		"columns": grid.Columns(),
		"mines":   grid.Mines(),
		"seed":    seed,
	}).Info("session started")

	logMessage(s, message("WELCOME"))
	logMessage(s, message("GRID_SIZE", grid.Rows(), grid.Columns(), grid.Mines()))
	return s
}

// ResetGame starts a new game on the session's grid. Mines are placed again
// on the next reveal.
func ResetGame(s *state.Session) {
	s.Lock()
	defer s.Unlock()
	resetGame(s)
}

func resetGame(s *state.Session) {
	s.Grid.Reset()
	s.ResetProgress()
	s.ShowHelp = false

	sessionLog(s).Info("game reset")
	logMessage(s, message("NEW_GAME"))
}

// RemainingMines returns the mine count minus the flags placed.
// It goes negative when the player over-flags. The caller holds the session
// lock.
func RemainingMines(s *state.Session) int {
	return s.Grid.Mines() - s.Grid.FlagCount()
}

func sessionLog(s *state.Session) *logrus.Entry {
	return logging.Log.WithField("session", s.ShortID())
}

// logMessage adds a message to the session's message log
func logMessage(s *state.Session, msg string) {
	s.AddMessage(msg)
	sessionLog(s).Debug(msg)
}
