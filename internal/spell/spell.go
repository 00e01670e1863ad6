// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spell

import (
	"context"
	"strings"
	"unicode"

	"github.com/pdiddy/reflow-engine/internal/structure"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

// Corrector applies token-level spelling correction to reconstructed
// lines. Heading text is never touched.
type Corrector struct {
	oracle     Oracle
	customDict map[string]bool
	aggressive bool
}

// NewCorrector creates a corrector backed by oracle. Words in
// customDict are accepted as spelled regardless of what the oracle
// says. When aggressive is true the top suggestion is always applied;
// otherwise it is applied only when close to the original.
func NewCorrector(oracle Oracle, customDict []string, aggressive bool) *Corrector {
	dict := make(map[string]bool, len(customDict))
	for _, w := range customDict {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			dict[w] = true
		}
	}
	return &Corrector{oracle: oracle, customDict: dict, aggressive: aggressive}
}

// CorrectLines returns a copy of lines with paragraph and list-item
// text spell-corrected. Oracle errors leave the affected token
// unchanged.
func (c *Corrector) CorrectLines(ctx context.Context, lines []types.LogicalLine) []types.LogicalLine {
	out := make([]types.LogicalLine, len(lines))
	for i, line := range lines {
		out[i] = line
		switch line.Kind {
		case types.LineParagraph:
			out[i].Text = c.correctText(ctx, line.Text)
		case types.LineListItem:
			if line.Item != nil {
				item := *line.Item
				item.Text = c.correctText(ctx, item.Text)
				out[i].Item = &item
				out[i].Text = item.Text
			}
		}
	}
	return out
}

func (c *Corrector) correctText(ctx context.Context, text string) string {
	// Columnar and 4-space-indented lines keep their spacing verbatim;
	// the renderer's table and code detection reads it.
	if structure.IsColumnar(text) || strings.HasPrefix(text, "    ") {
		return text
	}

	tokens := strings.Fields(text)
	changed := false
	for i, token := range tokens {
		corrected := c.correctToken(ctx, token)
		if corrected != token {
			tokens[i] = corrected
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(tokens, " ")
}

func (c *Corrector) correctToken(ctx context.Context, token string) string {
	cleaned, prefix, suffix := splitToken(token)
	key := strings.ToLower(cleaned)

	if len(key) < 2 || c.customDict[key] {
		return token
	}

	misspelled, err := c.oracle.IsMisspelled(ctx, key)
	if err != nil || !misspelled {
		return token
	}

	suggestions, err := c.oracle.Suggest(ctx, key)
	if err != nil || len(suggestions) == 0 {
		return token
	}

	top := suggestions[0]
	if !c.aggressive {
		limit := max(1, len(key)*3/10)
		if EditDistance(key, top) > limit {
			return token
		}
	}

	return prefix + applyCasing(cleaned, top) + suffix
}

// splitToken separates a token into its leading punctuation, word core,
// and trailing punctuation.
func splitToken(token string) (core, prefix, suffix string) {
	runes := []rune(token)

	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}

	return string(runes[start:end]), string(runes[:start]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// applyCasing transfers the casing pattern of original onto correction.
func applyCasing(original, correction string) string {
	if isAllUpper(original) {
		return strings.ToUpper(correction)
	}
	if startsUpper(original) {
		runes := []rune(correction)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		return string(runes)
	}
	return correction
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
