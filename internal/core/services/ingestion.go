package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// Ensure ingestionService implements IngestionService
var _ driving.IngestionService = (*ingestionService)(nil)

// ingestionService implements the IngestionService interface.
// Pipeline: normalise -> segment -> embed -> atomic store write.
type ingestionService struct {
	documentStore driven.DocumentStore
	embedder      driven.EmbeddingService
	normalisers   driven.NormaliserRegistry
	idGen         driven.IDGenerator
	segmenter     *Segmenter
	maxChunkChars int
	logger        *slog.Logger
}

// IngestionConfig holds the ingestion service dependencies
type IngestionConfig struct {
	DocumentStore driven.DocumentStore
	Embedder      driven.EmbeddingService
	Normalisers   driven.NormaliserRegistry
	IDGenerator   driven.IDGenerator
	Segmenter     *Segmenter
	MaxChunkChars int // defaults to DefaultMaxChunkChars
	Logger        *slog.Logger
}

// NewIngestionService creates a new IngestionService
func NewIngestionService(cfg IngestionConfig) driving.IngestionService {
	maxChunkChars := cfg.MaxChunkChars
	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ingestionService{
		documentStore: cfg.DocumentStore,
		embedder:      cfg.Embedder,
		normalisers:   cfg.Normalisers,
		idGen:         cfg.IDGenerator,
		segmenter:     cfg.Segmenter,
		maxChunkChars: maxChunkChars,
		logger:        logger,
	}
}

// Ingest processes and stores a new document for an owner
func (s *ingestionService) Ingest(ctx context.Context, ownerID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
	doc, err := s.buildDocument(ctx, ownerID, s.idGen.NewDocumentID(), req)
	if err != nil {
		return nil, err
	}

	if err := s.documentStore.Put(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document ingested",
		"owner_id", ownerID,
		"document_id", doc.ID,
		"chunks", doc.ChunkCount(),
	)

	return &driving.IngestResponse{
		DocumentID: doc.ID,
		ChunkCount: doc.ChunkCount(),
	}, nil
}

// Replace re-runs the pipeline over new content and swaps the stored document
func (s *ingestionService) Replace(ctx context.Context, ownerID, documentID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
	if documentID == "" {
		return nil, domain.ErrInvalidInput
	}

	doc, err := s.buildDocument(ctx, ownerID, documentID, req)
	if err != nil {
		return nil, err
	}

	if err := s.documentStore.Replace(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document replaced",
		"owner_id", ownerID,
		"document_id", documentID,
		"chunks", doc.ChunkCount(),
	)

	return &driving.IngestResponse{
		DocumentID: documentID,
		ChunkCount: doc.ChunkCount(),
	}, nil
}

// buildDocument runs normalise -> segment -> embed and assembles a document
// ready for an all-or-nothing store write.
func (s *ingestionService) buildDocument(ctx context.Context, ownerID, documentID string, req driving.IngestRequest) (*domain.Document, error) {
	if ownerID == "" || strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "text/plain"
	}

	normaliser := s.normalisers.Get(mimeType)
	if normaliser == nil {
		return nil, domain.ErrUnsupportedFormat
	}

	content := normaliser.Normalise(req.Content, mimeType)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	texts := s.segmenter.Segment(content, s.maxChunkChars)
	if len(texts) == 0 {
		return nil, domain.ErrInvalidInput
	}

	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, domain.ErrEmbeddingFailed
	}
	if len(embeddings) != len(texts) {
		return nil, domain.ErrEmbeddingFailed
	}

	chunks := make([]*domain.Chunk, len(texts))
	for i, text := range texts {
		// A chunk is never stored without a usable vector
		if !validEmbedding(embeddings[i]) {
			return nil, domain.ErrEmbeddingFailed
		}
		chunks[i] = &domain.Chunk{
			Text:      text,
			Embedding: embeddings[i],
			Position:  i,
		}
	}

	return &domain.Document{
		ID:        documentID,
		OwnerID:   ownerID,
		Name:      req.Name,
		Content:   content,
		Chunks:    chunks,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// validEmbedding rejects missing and zero-norm vectors
func validEmbedding(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}
