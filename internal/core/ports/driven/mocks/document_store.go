package mocks

import (
	"context"
	"sync"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// MockDocumentStore is a mock implementation of DocumentStore for testing
type MockDocumentStore struct {
	mu      sync.RWMutex
	byOwner map[string][]*domain.Document
	failPut error
}

// NewMockDocumentStore creates a new MockDocumentStore
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		byOwner: make(map[string][]*domain.Document),
	}
}

func (m *MockDocumentStore) Put(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut != nil {
		return m.failPut
	}
	for _, d := range m.byOwner[doc.OwnerID] {
		if d.ID == doc.ID {
			return domain.ErrDuplicateDocument
		}
	}
	m.byOwner[doc.OwnerID] = append(m.byOwner[doc.OwnerID], doc)
	return nil
}

func (m *MockDocumentStore) GetByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]*domain.Document, len(m.byOwner[ownerID]))
	copy(docs, m.byOwner[ownerID])
	return docs, nil
}

func (m *MockDocumentStore) Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.byOwner[ownerID] {
		if d.ID == documentID {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDocumentStore) Delete(ctx context.Context, ownerID, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.byOwner[ownerID]
	for i, d := range docs {
		if d.ID == documentID {
			m.byOwner[ownerID] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockDocumentStore) Replace(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.byOwner[doc.OwnerID]
	for i, d := range docs {
		if d.ID == doc.ID {
			docs[i] = doc
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockDocumentStore) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byOwner[ownerID]), nil
}

// Helper methods for testing

func (m *MockDocumentStore) SetFailPut(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPut = err
}
