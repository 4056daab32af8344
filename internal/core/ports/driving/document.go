package driving

import (
	"context"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// DocumentService provides owner-scoped document access
type DocumentService interface {
	// Get retrieves one document owned by ownerID
	Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error)

	// List retrieves summaries of all documents for an owner
	List(ctx context.Context, ownerID string) ([]*domain.DocumentSummary, error)

	// Delete removes one document owned by ownerID
	Delete(ctx context.Context, ownerID, documentID string) error

	// Count returns the number of documents for an owner
	Count(ctx context.Context, ownerID string) (int, error)
}
