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

// Ensure suggestionService implements SuggestionService
var _ driving.SuggestionService = (*suggestionService)(nil)

// suggestionService implements the SuggestionService interface
type suggestionService struct {
	documentStore driven.DocumentStore
	embedder      driven.EmbeddingService
	ranker        *Ranker
	logger        *slog.Logger
}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService(
	documentStore driven.DocumentStore,
	embedder driven.EmbeddingService,
	ranker *Ranker,
	logger *slog.Logger,
) driving.SuggestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &suggestionService{
		documentStore: documentStore,
		embedder:      embedder,
		ranker:        ranker,
		logger:        logger,
	}
}

// Suggest embeds the query and ranks the owner's corpus against it
func (s *suggestionService) Suggest(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error) {
	start := time.Now()

	query = strings.TrimSpace(query)
	if ownerID == "" || query == "" {
		return nil, domain.ErrInvalidInput
	}

	if opts.Threshold == 0 && opts.MaxResults == 0 && opts.MinResults == 0 {
		opts = domain.DefaultSuggestOptions()
	}

	docs, err := s.documentStore.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// An empty corpus and an empty result set are distinct conditions
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}

	queryEmbedding, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, domain.ErrEmbeddingFailed
	}
	if !validEmbedding(queryEmbedding) {
		return nil, domain.ErrEmbeddingFailed
	}

	suggestions := s.ranker.Rank(queryEmbedding, docs, opts)
	if len(suggestions) == 0 {
		return nil, domain.ErrNoMatch
	}

	s.logger.Info("suggestions ranked",
		"owner_id", ownerID,
		"documents", len(docs),
		"results", len(suggestions),
	)

	return &domain.SuggestResult{
		Query:       query,
		Suggestions: suggestions,
		Took:        time.Since(start),
	}, nil
}
