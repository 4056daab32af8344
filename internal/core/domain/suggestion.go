package domain

import "time"

// Suggestion is a ranked chunk returned at query time. Never persisted.
type Suggestion struct {
	DocumentName string  `json:"filename"`
	Text         string  `json:"content_snippet"`
	Similarity   float64 `json:"similarity"`
}

// SuggestOptions configures the similarity ranking of a query
type SuggestOptions struct {
	// Threshold is the minimum cosine similarity a chunk must exceed
	Threshold float64 `json:"threshold"`

	// MaxResults bounds the result list size
	MaxResults int `json:"max_results"`

	// MinResults bounds the fallback list size when nothing cleared the
	// threshold. The retained list is already threshold-filtered, so this
	// branch yields an empty list in practice; it is kept for parity with
	// the documented result-count policy.
	MinResults int `json:"min_results"`
}

// DefaultSuggestOptions returns the standard ranking parameters
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		Threshold:  0.6,
		MaxResults: 5,
		MinResults: 3,
	}
}

// SuggestResult is the outcome of a suggestion query
type SuggestResult struct {
	Query       string        `json:"query"`
	Suggestions []*Suggestion `json:"suggestions"`
	Took        time.Duration `json:"took" swaggertype:"integer" example:"1500000"`
}
