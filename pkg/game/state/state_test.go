package state

import (
	"fmt"
	"testing"

	"minesweeper/pkg/engine/field"
)

func TestNewSession_UniqueIDs(t *testing.T) {
	a := NewSession(field.NewGrid(3, 3, 1), 1)
	b := NewSession(field.NewGrid(3, 3, 1), 1)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session ids %q and %q, want distinct non-empty ids", a.ID, b.ID)
	}
	if got := len(a.ShortID()); got != 8 {
		t.Errorf("len(ShortID()) = %d, want 8", got)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := NewSession(field.NewGrid(3, 3, 1), 1)
	for i := 0; i < 7; i++ {
		s.AddMessage(fmt.Sprintf("msg %d", i))
	}
	if len(s.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(s.Messages), maxMessages)
	}
	if s.Messages[0] != "msg 2" || s.Messages[4] != "msg 6" {
		t.Errorf("Messages = %v, want msg 2 .. msg 6", s.Messages)
	}

	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Errorf("after ClearMessages len = %d, want 0", len(s.Messages))
	}
}

func TestRecordMove(t *testing.T) {
	s := NewSession(field.NewGrid(3, 3, 1), 1)
	s.RecordMove(field.Pos(1, 2))
	s.RecordMove(field.Pos(0, 0))

	if s.Moves != 2 {
		t.Errorf("Moves = %d, want 2", s.Moves)
	}
	if !s.IsLastMove(field.Pos(0, 0)) || s.IsLastMove(field.Pos(1, 2)) {
		t.Errorf("LastMove = %v, want 0,0", s.LastMove)
	}

	s.ResetProgress()
	if s.Moves != 0 || s.LastMove != nil {
		t.Errorf("after ResetProgress Moves=%d LastMove=%v, want 0 and nil", s.Moves, s.LastMove)
	}
}
