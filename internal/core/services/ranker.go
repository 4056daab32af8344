package services

import (
	"math"
	"sort"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// Ranker scores an owner's corpus against a query vector and produces a
// deduplicated, thresholded, size-bounded result list. Exact linear scan;
// correctness does not depend on any index structure.
type Ranker struct{}

// NewRanker creates a new Ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank computes cosine similarity for every chunk across every document and
// applies the ranking rules:
//
//  1. Deduplicate by exact chunk text; the first occurrence in scan order
//     wins regardless of later similarities.
//  2. Retain only chunks with similarity > opts.Threshold.
//  3. Sort retained chunks by similarity descending; ties keep scan order.
//  4. Return the top min(opts.MaxResults, retained) results when that is
//     positive, otherwise the top min(opts.MinResults, retained). The
//     retained list is already threshold-filtered, so the fallback branch
//     only ever returns an empty list.
//
// Zero-norm chunk embeddings are skipped rather than divided by.
func (r *Ranker) Rank(query []float32, docs []*domain.Document, opts domain.SuggestOptions) []*domain.Suggestion {
	var retained []*domain.Suggestion
	seen := make(map[string]struct{})

	for _, doc := range docs {
		for _, chunk := range doc.Chunks {
			if _, dup := seen[chunk.Text]; dup {
				continue
			}
			similarity, ok := CosineSimilarity(query, chunk.Embedding)
			if !ok {
				continue
			}
			seen[chunk.Text] = struct{}{}
			if similarity > opts.Threshold {
				retained = append(retained, &domain.Suggestion{
					DocumentName: doc.Name,
					Text:         chunk.Text,
					Similarity:   similarity,
				})
			}
		}
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Similarity > retained[j].Similarity
	})

	maxResults := opts.MaxResults
	if maxResults > len(retained) {
		maxResults = len(retained)
	}
	if maxResults > 0 {
		return retained[:maxResults]
	}

	minResults := opts.MinResults
	if minResults > len(retained) {
		minResults = len(retained)
	}
	return retained[:minResults]
}

// CosineSimilarity returns dot(a,b)/(|a|*|b|) in [-1,1].
// The second return value is false when either vector has zero norm or the
// dimensions differ; the similarity is undefined in that case.
func CosineSimilarity(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
