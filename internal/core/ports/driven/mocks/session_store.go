package mocks

import (
	"context"
	"sync"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// MockSessionStore is a mock implementation of SessionStore for testing
type MockSessionStore struct {
	mu             sync.RWMutex
	sessions       map[string]*domain.Session
	byRefreshToken map[string]*domain.Session
	byUser         map[string][]*domain.Session
}

// NewMockSessionStore creates a new MockSessionStore
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions:       make(map[string]*domain.Session),
		byRefreshToken: make(map[string]*domain.Session),
		byUser:         make(map[string][]*domain.Session),
	}
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	if session.RefreshToken != "" {
		m.byRefreshToken[session.RefreshToken] = session
	}
	m.byUser[session.UserID] = append(m.byUser[session.UserID], session)
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionStore) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.byRefreshToken[refreshToken]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	delete(m.byRefreshToken, session.RefreshToken)
	return nil
}

func (m *MockSessionStore) DeleteByUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, session := range m.byUser[userID] {
		delete(m.sessions, session.ID)
		delete(m.byRefreshToken, session.RefreshToken)
	}
	delete(m.byUser, userID)
	return nil
}
