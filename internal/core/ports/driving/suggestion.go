package driving

import (
	"context"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// SuggestionService answers free-text queries against an owner's corpus
type SuggestionService interface {
	// Suggest embeds the query and returns the owner's most relevant chunks,
	// deduplicated, thresholded, ranked and size-bounded.
	// Returns domain.ErrNoDocuments when the owner has no documents and
	// domain.ErrNoMatch when nothing clears the similarity threshold.
	Suggest(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error)
}
