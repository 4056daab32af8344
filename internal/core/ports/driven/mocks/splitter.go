package mocks

import "strings"

// MockSentenceSplitter is a mock implementation of SentenceSplitter for
// testing. It splits on sentence terminators without any abbreviation
// handling, which is enough for controlled test inputs.
type MockSentenceSplitter struct{}

// NewMockSentenceSplitter creates a new MockSentenceSplitter
func NewMockSentenceSplitter() *MockSentenceSplitter {
	return &MockSentenceSplitter{}
}

func (m *MockSentenceSplitter) Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
