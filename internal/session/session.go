// Package session holds per-learner state around the pure engine: the
// current snapshot, a bounded undo/redo history, and a journal of every
// command the learner typed.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// undoLimit bounds how many snapshots a session keeps for undo.
const undoLimit = 100

// JournalEntry records one executed command. Failed commands are journaled
// too; they are part of the learner's transcript even though they changed
// nothing.
type JournalEntry struct {
	Command string    `json:"command"`
	Output  string    `json:"output"`
	Success bool      `json:"success"`
	At      time.Time `json:"at"`
}

// Session is one learner's sandbox.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	snapshot  *repo.Snapshot
	undoStack []*repo.Snapshot
	redoStack []*repo.Snapshot
	journal   []JournalEntry
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		snapshot:  repo.NewInitSnapshot(),
	}
}

// Snapshot returns the current snapshot. Snapshots are immutable values;
// callers must not modify the result.
func (s *Session) Snapshot() *repo.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// History returns a copy of the command journal, oldest first.
func (s *Session) History() []JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]JournalEntry, len(s.journal))
	copy(entries, s.journal)
	return entries
}

// execute runs one input line and folds the result into the session. Only
// commands that actually changed state become undo steps; every command is
// journaled.
func (s *Session) execute(ctx context.Context, eng *git.Engine, line string, at time.Time) git.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := eng.Run(ctx, s.snapshot, line)
	if res.Success && res.Snapshot != s.snapshot {
		s.undoStack = append(s.undoStack, s.snapshot)
		if len(s.undoStack) > undoLimit {
			s.undoStack = s.undoStack[len(s.undoStack)-undoLimit:]
		}
		s.redoStack = nil
		s.snapshot = res.Snapshot
	}
	s.journal = append(s.journal, JournalEntry{
		Command: line,
		Output:  res.Output,
		Success: res.Success,
		At:      at,
	})
	return res
}

// Undo steps back to the snapshot before the last state-changing command.
func (s *Session) Undo() (*repo.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}
	prev := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, s.snapshot)
	s.snapshot = prev
	return prev, nil
}

// Redo reapplies the last undone state.
func (s *Session) Redo() (*repo.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}
	next := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, s.snapshot)
	s.snapshot = next
	return next, nil
}

// Reset puts the session back on the canonical starting snapshot and drops
// the undo/redo stacks. The journal is kept; it is the learner's transcript,
// not engine state.
func (s *Session) Reset() *repo.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = repo.NewInitSnapshot()
	s.undoStack = nil
	s.redoStack = nil
	return s.snapshot
}

// replay rebuilds the session from the canonical starting snapshot by
// running each line through the engine in order. The new state is built off
// to the side and swapped in only when every line succeeds, so a failing
// line leaves the session untouched. Undo history and the journal start
// empty afterwards; the learner was not at the keyboard for any of it.
func (s *Session) replay(ctx context.Context, eng *git.Engine, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := repo.NewInitSnapshot()
	for _, line := range lines {
		res := eng.Run(ctx, snap, line)
		if !res.Success {
			return fmt.Errorf("setup failed at %q: %s", line, strings.TrimSpace(res.Output))
		}
		snap = res.Snapshot
	}
	s.snapshot = snap
	s.undoStack = nil
	s.redoStack = nil
	s.journal = nil
	return nil
}

// sessionState is the persisted shape of a session.
type sessionState struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Snapshot  *repo.Snapshot   `json:"snapshot"`
	Undo      []*repo.Snapshot `json:"undo,omitempty"`
	Redo      []*repo.Snapshot `json:"redo,omitempty"`
	Journal   []JournalEntry   `json:"journal,omitempty"`
}

func (s *Session) marshal() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(sessionState{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Snapshot:  s.snapshot,
		Undo:      s.undoStack,
		Redo:      s.redoStack,
		Journal:   s.journal,
	})
}

func unmarshalSession(data []byte) (*Session, error) {
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Snapshot == nil {
		return nil, fmt.Errorf("session %s has no snapshot", state.ID)
	}
	if err := state.Snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("session %s snapshot: %w", state.ID, err)
	}
	return &Session{
		ID:        state.ID,
		CreatedAt: state.CreatedAt,
		snapshot:  state.Snapshot,
		undoStack: state.Undo,
		redoStack: state.Redo,
		journal:   state.Journal,
	}, nil
}
