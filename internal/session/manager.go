// Package session manages preview sessions: the accumulated pasted blocks,
// uploaded file references and form fields behind one operator's draft.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maintgen/backend/internal/models"
)

// MaxSessions limits concurrent sessions to prevent memory exhaustion.
const MaxSessions = 64

// Manager handles active preview sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*models.PreviewSession

	// onChange, when set, is invoked after every mutation of a session.
	// The websocket preview hub hooks in here.
	onChange func(sessionID string)
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*models.PreviewSession),
	}
}

// SetChangeListener registers a callback fired after each session mutation.
func (m *Manager) SetChangeListener(fn func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// NewSession creates an empty preview session.
func (m *Manager) NewSession() (*models.PreviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= MaxSessions {
		return nil, fmt.Errorf("session limit reached (%d)", MaxSessions)
	}

	now := time.Now()
	s := &models.PreviewSession{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		LastAccessed: now,
	}
	m.sessions[s.ID] = s

	return snapshot(s), nil
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id string) (*models.PreviewSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return snapshot(s), true
}

// AppendBlock adds one pasted TSV block to a session. Blocks accumulate in
// submission order; that order drives the final circuit list order.
func (m *Manager) AppendBlock(id, block string) bool {
	return m.mutate(id, func(s *models.PreviewSession) {
		s.Blocks = append(s.Blocks, block)
	})
}

// AttachFile records an uploaded file ID on a session.
func (m *Manager) AttachFile(id, fileID string) bool {
	return m.mutate(id, func(s *models.PreviewSession) {
		s.FileIDs = append(s.FileIDs, fileID)
	})
}

// SetFields replaces the form fields of a session.
func (m *Manager) SetFields(id string, fields models.NoticeFields) bool {
	return m.mutate(id, func(s *models.PreviewSession) {
		s.Fields = fields
	})
}

// Touch refreshes the last-access time of a session.
func (m *Manager) Touch(id string) bool {
	return m.mutate(id, nil)
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// CleanupOldSessions removes sessions idle for longer than maxAge and
// returns how many were removed.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed
}

func (m *Manager) mutate(id string, fn func(*models.PreviewSession)) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return false
	}
	if fn != nil {
		fn(s)
	}
	s.LastAccessed = time.Now()
	onChange := m.onChange
	m.mu.Unlock()

	if fn != nil && onChange != nil {
		onChange(id)
	}
	return true
}

// snapshot copies a session so callers never share the manager's slices.
func snapshot(s *models.PreviewSession) *models.PreviewSession {
	cp := *s
	cp.Blocks = append([]string(nil), s.Blocks...)
	cp.FileIDs = append([]string(nil), s.FileIDs...)
	cp.Fields.PurposePresets = append([]string(nil), s.Fields.PurposePresets...)
	return &cp
}
