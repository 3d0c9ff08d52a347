package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/storage"
)

var (
	// ErrNotFound means the session exists neither in memory nor in the store.
	ErrNotFound = errors.New("session not found")
	// ErrNothingToUndo means the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo means the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Manager owns the live sessions and writes them through to a store so they
// survive restarts.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	engine   *git.Engine
	store    storage.Store
	now      func() time.Time
}

// NewManager creates a manager persisting into store.
func NewManager(store storage.Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		engine:   git.New(),
		store:    store,
		now:      time.Now,
	}
}

// Create registers a new session seeded with the canonical starting
// repository. An empty id gets a generated one; an existing id returns the
// existing session, so the init endpoint is safe to retry.
func (m *Manager) Create(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		id = newSessionID()
	}

	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	s := newSession(id, m.now())
	m.sessions[id] = s
	m.mu.Unlock()

	if err := m.persist(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a live session, falling back to the store for sessions from
// before a restart.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	data, err := m.store.Load(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	restored, err := unmarshalSession(data)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.sessions[id]; ok {
		return cached, nil
	}
	m.sessions[id] = restored
	return restored, nil
}

// Execute runs one input line in the session and persists the outcome.
// Engine failures are not errors here; they come back inside the Result.
func (m *Manager) Execute(ctx context.Context, id, line string) (git.Result, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return git.Result{}, err
	}
	res := s.execute(ctx, m.engine, line, m.now())
	if err := m.persist(ctx, s); err != nil {
		return git.Result{}, err
	}
	return res, nil
}

// Undo steps the session back one state-changing command.
func (m *Manager) Undo(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Undo(); err != nil {
		return nil, err
	}
	if err := m.persist(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Redo reapplies the session's last undone state.
func (m *Manager) Redo(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Redo(); err != nil {
		return nil, err
	}
	if err := m.persist(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset puts the session back on the canonical starting snapshot.
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Reset()
	if err := m.persist(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Replay resets the session and rebuilds it by running the given lines
// through the engine. Lesson starts use this to stage the lesson's setup
// commands. A failing line aborts the replay and leaves the session as it
// was.
func (m *Manager) Replay(ctx context.Context, id string, lines []string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.replay(ctx, m.engine, lines); err != nil {
		return nil, err
	}
	if err := m.persist(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// History returns the session's command journal.
func (m *Manager) History(ctx context.Context, id string) ([]JournalEntry, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.History(), nil
}

func (m *Manager) persist(ctx context.Context, s *Session) error {
	data, err := s.marshal()
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", s.ID, err)
	}
	if err := m.store.Save(ctx, s.ID, data); err != nil {
		return fmt.Errorf("persist session %s: %w", s.ID, err)
	}
	return nil
}

func newSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("s-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
