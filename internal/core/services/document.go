package services

import (
	"context"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface
type documentService struct {
	documentStore driven.DocumentStore
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentStore driven.DocumentStore) driving.DocumentService {
	return &documentService{documentStore: documentStore}
}

// Get retrieves one document owned by ownerID
func (s *documentService) Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error) {
	if ownerID == "" || documentID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.documentStore.Get(ctx, ownerID, documentID)
}

// List retrieves summaries of all documents for an owner
func (s *documentService) List(ctx context.Context, ownerID string) ([]*domain.DocumentSummary, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}

	docs, err := s.documentStore.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, doc.ToSummary())
	}
	return summaries, nil
}

// Delete removes one document owned by ownerID
func (s *documentService) Delete(ctx context.Context, ownerID, documentID string) error {
	if ownerID == "" || documentID == "" {
		return domain.ErrInvalidInput
	}
	return s.documentStore.Delete(ctx, ownerID, documentID)
}

// Count returns the number of documents for an owner
func (s *documentService) Count(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, domain.ErrInvalidInput
	}
	return s.documentStore.CountByOwner(ctx, ownerID)
}
