package id

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.IDGenerator = (*Generator)(nil)

const (
	documentIDLength   = 24
	documentIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces identifiers for new entities. Users and sessions get
// UUIDs; documents get short URL-safe alphanumeric ids.
type Generator struct{}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// NewDocumentID returns a random 24-character alphanumeric id
func (g *Generator) NewDocumentID() string {
	b := make([]byte, documentIDLength)
	max := big.NewInt(int64(len(documentIDAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure is unrecoverable; fall back to a UUID
			return uuid.NewString()
		}
		b[i] = documentIDAlphabet[n.Int64()]
	}
	return string(b)
}

// NewUserID returns a new UUID
func (g *Generator) NewUserID() string {
	return uuid.NewString()
}

// NewSessionID returns a new UUID
func (g *Generator) NewSessionID() string {
	return uuid.NewString()
}
