package mocks

import (
	"encoding/json"
	"strings"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// MockAuthAdapter is a mock implementation of AuthAdapter for testing.
// Tokens are plain JSON payloads with a fixed prefix, no cryptography.
type MockAuthAdapter struct {
	failParse bool
}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hashed:"+password
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return "mock." + string(payload), nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	if m.failParse {
		return nil, domain.ErrTokenInvalid
	}
	payload, ok := strings.CutPrefix(token, "mock.")
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	var claims domain.TokenClaims
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return &claims, nil
}

// Helper methods for testing

func (m *MockAuthAdapter) SetFailParse(fail bool) {
	m.failParse = fail
}
