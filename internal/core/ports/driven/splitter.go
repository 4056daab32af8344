package driven

// SentenceSplitter detects sentence boundaries in normalized text.
// Implementations must return an ordered sequence of sentence strings
// covering the input without loss of content.
type SentenceSplitter interface {
	// Sentences splits text into trimmed sentences in original order.
	// Empty input yields an empty slice.
	Sentences(text string) []string
}
