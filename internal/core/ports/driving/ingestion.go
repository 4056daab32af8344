package driving

import (
	"context"
)

// IngestRequest describes a document to ingest
type IngestRequest struct {
	Name     string `json:"title"`
	MimeType string `json:"mime_type,omitempty"` // defaults to text/plain
	Content  string `json:"content"`
}

// IngestResponse is returned after a successful ingestion
type IngestResponse struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
}

// IngestionService turns raw text into an embedded, stored document.
// The pipeline is normalise -> segment -> embed -> atomic store write;
// if any chunk's embedding fails, nothing is persisted.
type IngestionService interface {
	// Ingest processes and stores a new document for an owner
	Ingest(ctx context.Context, ownerID string, req IngestRequest) (*IngestResponse, error)

	// Replace re-runs the ingestion pipeline over new content and swaps the
	// stored document atomically, keeping its id
	Replace(ctx context.Context, ownerID, documentID string, req IngestRequest) (*IngestResponse, error)
}
