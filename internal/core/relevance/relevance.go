// Package relevance decides whether a transcript is about food using plain substring keywords
package relevance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeywordSet is an immutable list of lowercase keywords
// it is built once and shared read-only
type KeywordSet struct {
	words []string
}

// NewKeywordSet lowercases words and drops blank entries, keeping order
func NewKeywordSet(words ...string) KeywordSet {
	lower := cases.Lower(language.Und)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, lower.String(w))
	}
	return KeywordSet{words: out}
}

// Words returns a copy of the keywords
func (k KeywordSet) Words() []string {
	return append([]string(nil), k.words...)
}

// Len returns the number of keywords
func (k KeywordSet) Len() int { return len(k.words) }

// IsRelevant reports whether any keyword occurs in text after lowercasing it once
// matching is by substring, so "food" also matches "foodball"
func IsRelevant(text string, keywords KeywordSet) bool {
	if len(keywords.words) == 0 || text == "" {
		return false
	}
	lowered := cases.Lower(language.Und).String(text)
	for _, w := range keywords.words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
