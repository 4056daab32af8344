package mocks

import (
	"fmt"
	"sync/atomic"
)

// MockIDGenerator is a mock implementation of IDGenerator for testing.
// IDs are sequential and predictable.
type MockIDGenerator struct {
	counter atomic.Int64
}

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) NewDocumentID() string {
	return fmt.Sprintf("doc-%d", m.counter.Add(1))
}

func (m *MockIDGenerator) NewUserID() string {
	return fmt.Sprintf("user-%d", m.counter.Add(1))
}

func (m *MockIDGenerator) NewSessionID() string {
	return fmt.Sprintf("session-%d", m.counter.Add(1))
}
