package splitter

import (
	"strings"
	"unicode"

	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SentenceSplitter = (*RuleSplitter)(nil)

// Common abbreviations that end with a period but do not terminate
// a sentence. Lowercased, without the trailing period.
var abbreviations = map[string]struct{}{
	"mr":   {},
	"mrs":  {},
	"ms":   {},
	"dr":   {},
	"prof": {},
	"sr":   {},
	"jr":   {},
	"st":   {},
	"vs":   {},
	"etc":  {},
	"e.g":  {},
	"i.e":  {},
	"al":   {},
	"approx": {},
	"dept": {},
	"fig":  {},
	"no":   {},
	"vol":  {},
}

// RuleSplitter detects sentence boundaries with punctuation rules.
// A boundary is a run of '.', '!' or '?' followed by whitespace, unless
// the preceding token is a known abbreviation, a single initial, or the
// period sits inside a number.
type RuleSplitter struct{}

// NewRuleSplitter creates a new RuleSplitter
func NewRuleSplitter() *RuleSplitter {
	return &RuleSplitter{}
}

// Sentences splits text into trimmed sentences in original order
func (s *RuleSplitter) Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Consume a run of closing punctuation (e.g. "?!", "...", quotes)
		end := i
		for end+1 < len(runes) && isClosing(runes[end+1]) {
			end++
		}

		// Not a boundary unless followed by whitespace or end of text
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}

		if r == '.' && !s.isSentenceEnd(runes, start, i) {
			i = end
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// isClosing reports whether r can trail sentence-ending punctuation
func isClosing(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// isSentenceEnd decides whether the period at pos terminates a sentence
func (s *RuleSplitter) isSentenceEnd(runes []rune, start, pos int) bool {
	// Period inside a number ("3.14") is never a boundary; this only
	// matters when digits follow, which the whitespace check already
	// excludes, so look at the preceding token.
	tokenStart := pos
	for tokenStart > start && !unicode.IsSpace(runes[tokenStart-1]) {
		tokenStart--
	}
	token := strings.ToLower(string(runes[tokenStart:pos]))
	token = strings.TrimLeft(token, "(\"'[")

	if _, ok := abbreviations[token]; ok {
		return false
	}

	// Single-letter initials like "J." in "J. Smith"
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'z' {
		return false
	}

	return true
}
