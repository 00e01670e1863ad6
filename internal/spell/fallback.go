// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spell

import (
	"context"
	"strings"
)

// ocrSubstitutions maps characters to the characters OCR engines most
// often confuse them with.
var ocrSubstitutions = map[rune][]rune{
	'l': {'i', '1', 'I'},
	'i': {'l', '1'},
	'1': {'l', 'i'},
	'o': {'0'},
	'0': {'o'},
	'm': {'n'},
	'n': {'m'},
	's': {'5'},
	'5': {'s'},
	'z': {'2'},
	'2': {'z'},
	'e': {'c'},
	'c': {'e'},
	'h': {'b'},
	'b': {'h'},
	'u': {'v'},
	'v': {'u'},
}

// commonWordList is the fallback dictionary, kept in a fixed order so
// suggestion scans are deterministic.
var commonWordList = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could",
	"them", "see", "other", "than", "then", "now", "look", "only", "come",
	"its", "over", "think", "also", "back", "after", "use", "two", "how",
	"our", "work", "first", "well", "way", "even", "new", "want", "because",
	"any", "these", "give", "day", "most", "us", "is", "was", "are", "were",
	"been", "has", "had", "said", "did", "having", "may", "should", "each",
	"made", "many", "more", "must", "such", "very", "through", "where",
	"much", "before", "too", "same", "own", "while", "might", "those",
	"both", "between", "under", "never", "without", "again", "around",
	"however", "against", "during", "place", "world", "still", "every",
	"found", "since", "another", "though", "within", "along", "example",
	"being", "here", "why", "thing", "part", "number", "great", "small",
	"large", "right", "hand", "high", "different", "following", "general",
	"important", "public", "system", "program", "question", "government",
	"case", "point", "group", "company", "fact", "information", "water",
	"form", "order", "book", "page", "line", "word", "text", "test",
	"section", "chapter", "table", "figure", "result", "results", "data",
	"value", "values", "function", "process", "method", "analysis",
	"report", "study", "research", "model", "level", "total", "change",
	"present", "provide", "include", "based", "shown", "given", "used",
	"using", "above", "below", "next", "last", "second", "third", "end",
	"begin", "start", "open", "close", "read", "write", "set", "list",
	"type", "name", "state", "area", "field", "term", "terms", "note",
	"notes", "content", "document", "title", "author", "source", "date",
	"quick", "brown", "fox", "jumps", "lazy", "dog", "hello",
}

var commonWords = func() map[string]bool {
	m := make(map[string]bool, len(commonWordList))
	for _, w := range commonWordList {
		m[w] = true
	}
	return m
}()

// FallbackOracle is a local, deterministic oracle used when no remote
// dictionary service is configured or reachable. It knows a fixed set
// of common English words and suggests corrections by OCR-variant
// lookup followed by a bounded edit-distance scan.
type FallbackOracle struct{}

// NewFallbackOracle creates the local oracle.
func NewFallbackOracle() *FallbackOracle {
	return &FallbackOracle{}
}

// IsMisspelled reports whether word is absent from the fallback
// dictionary. Tokens containing digits are treated as identifiers and
// never flagged.
func (o *FallbackOracle) IsMisspelled(_ context.Context, word string) (bool, error) {
	lower := strings.ToLower(word)
	if commonWords[lower] {
		return false, nil
	}
	if strings.ContainsAny(lower, "0123456789") {
		return false, nil
	}
	return true, nil
}

// Suggest returns corrections for word, best first. OCR-confusion
// variants that hit the dictionary win; otherwise the closest dictionary
// word within edit distance 2 and within 2 characters of the input
// length is returned. An empty slice means no candidate was close enough.
func (o *FallbackOracle) Suggest(_ context.Context, word string) ([]string, error) {
	lower := strings.ToLower(word)
	if commonWords[lower] {
		return []string{lower}, nil
	}

	for _, variant := range ocrVariants(lower) {
		if commonWords[variant] {
			return []string{variant}, nil
		}
	}

	best := ""
	bestDist := 3
	for _, known := range commonWordList {
		lenDiff := len(known) - len(lower)
		if lenDiff < -2 || lenDiff > 2 {
			continue
		}
		if dist := EditDistance(lower, known); dist < bestDist {
			bestDist = dist
			best = known
		}
	}

	if best == "" {
		return nil, nil
	}
	return []string{best}, nil
}

// ocrVariants returns the single-character OCR-confusion variants of
// word, in rune order.
func ocrVariants(word string) []string {
	runes := []rune(word)
	var variants []string
	for i, r := range runes {
		subs, ok := ocrSubstitutions[r]
		if !ok {
			continue
		}
		for _, sub := range subs {
			variant := make([]rune, len(runes))
			copy(variant, runes)
			variant[i] = sub
			variants = append(variants, string(variant))
		}
	}
	return variants
}
