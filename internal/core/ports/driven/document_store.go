package driven

import (
	"context"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// DocumentStore handles document persistence (PostgreSQL).
// The store does not interpret chunk content; it is a pass-through
// persistence boundary keyed by opaque owner and document identifiers.
type DocumentStore interface {
	// Put appends a new document together with all of its chunks in a single
	// transaction. Returns domain.ErrDuplicateDocument if the document id
	// already exists.
	Put(ctx context.Context, doc *domain.Document) error

	// GetByOwner retrieves all documents for an owner, chunks and embeddings
	// included. Order is unspecified; ranking sorts independently.
	GetByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error)

	// Get retrieves one document owned by ownerID. Owner mismatch and
	// absence are both domain.ErrNotFound.
	Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error)

	// Delete removes exactly one document owned by ownerID.
	// Returns domain.ErrNotFound if no match.
	Delete(ctx context.Context, ownerID, documentID string) error

	// Replace atomically swaps the stored content and chunks of an existing
	// document, keeping its id. Returns domain.ErrNotFound if no match.
	Replace(ctx context.Context, doc *domain.Document) error

	// CountByOwner returns the number of documents for an owner
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}
