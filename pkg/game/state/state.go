// Package state holds the per-player session wrapped around one grid.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"minesweeper/pkg/engine/field"
)

const maxMessages = 5

// Session represents one player's game
type Session struct {
	sync.Mutex

	ID   string
	Grid *field.Grid

	Seed      int64 // seed of the grid's random source
	StartedAt time.Time

	Moves    int
	LastMove *field.Position

	Messages []string
	ShowHelp bool
	Quit     bool
}

// NewSession wraps grid in a fresh session
func NewSession(grid *field.Grid, seed int64) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Grid:      grid,
		Seed:      seed,
		StartedAt: time.Now(),
		Messages:  make([]string, 0),
	}
}

// ShortID returns the first block of the session id, for file names and logs
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// RecordMove counts a move that changed the grid
func (s *Session) RecordMove(pos field.Position) {
	s.Moves++
	s.LastMove = &pos
}

// IsLastMove reports whether pos was the most recent move
func (s *Session) IsLastMove(pos field.Position) bool {
	return s.LastMove != nil && *s.LastMove == pos
}

// ResetProgress clears the move history for a new game on the same grid
func (s *Session) ResetProgress() {
	s.Moves = 0
	s.LastMove = nil
	s.StartedAt = time.Now()
	s.ClearMessages()
}

// Elapsed returns how long the current game has been running
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
