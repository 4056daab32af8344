package services

import (
	"strings"

	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
)

// DefaultMaxChunkChars is the standard character budget per chunk
const DefaultMaxChunkChars = 512

// Segmenter splits normalized text into bounded-size chunks along sentence
// boundaries. Input must already be whitespace-normalized (runs collapsed to
// single spaces, ends trimmed); the normaliser registry enforces that
// upstream. Deterministic and side-effect free for fixed sentence boundaries.
type Segmenter struct {
	splitter driven.SentenceSplitter
}

// NewSegmenter creates a new Segmenter around a sentence boundary detector
func NewSegmenter(splitter driven.SentenceSplitter) *Segmenter {
	return &Segmenter{splitter: splitter}
}

// Segment greedily accumulates sentences into chunks of at most maxChunkChars
// characters. A single sentence longer than the budget is still emitted whole
// as its own chunk; semantic units are never truncated mid-sentence.
// Empty input yields nil.
func (s *Segmenter) Segment(text string, maxChunkChars int) []string {
	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}

	sentences := s.splitter.Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []string
	var current string

	for _, sentence := range sentences {
		if len(current)+len(sentence) <= maxChunkChars {
			current += " " + sentence
			continue
		}
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		current = sentence
	}

	if trimmed := strings.TrimSpace(current); trimmed != "" {
		chunks = append(chunks, trimmed)
	}

	return chunks
}
