package session

import (
	"sync"
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns the active sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*State
	now      func() time.Time
	logger   zerolog.Logger
}

// NewManager creates an empty session manager. A nil now uses time.Now.
func NewManager(now func() time.Time, logger zerolog.Logger) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[uuid.UUID]*State),
		now:      now,
		logger:   logger.With().Str("component", "session-manager").Logger(),
	}
}

// Create starts a new session in grocery mode with the sample cards.
func (m *Manager) Create() *State {
	s := newState(uuid.New(), m.now())

	m.mu.Lock()
	m.sessions[s.id] = s
	active := len(m.sessions)
	m.mu.Unlock()

	m.logger.Info().
		Str("session_id", s.id.String()).
		Int("active_sessions", active).
		Msg("session created")
	return s
}

// Get resolves a session id.
func (m *Manager) Get(id uuid.UUID) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

// End discards a session.
func (m *Manager) End(id uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return model.ErrSessionNotFound
	}

	m.logger.Info().Str("session_id", id.String()).Msg("session ended")
	return nil
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
