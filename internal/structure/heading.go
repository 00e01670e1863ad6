// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// Heading patterns, evaluated in table order; the first match wins.
// Ambiguous lines follow whichever pattern appears earliest.
var (
	// romanHeadingRe matches roman-numeral prefixes like "II. Title".
	romanHeadingRe = regexp.MustCompile(`^([IVXLCDM]+)\.\s+(\S.*)$`)

	// numericHeadingRe matches numeric prefixes like "3. Title" or "3) Title".
	numericHeadingRe = regexp.MustCompile(`^(\d{1,3})[.)]\s+(\S.*)$`)

	// letterHeadingRe matches single-letter prefixes like "B. Title".
	letterHeadingRe = regexp.MustCompile(`^([A-Z])[.)]\s+(\S.*)$`)

	// dottedHeadingRe matches dotted numbering like "2.3 Title".
	dottedHeadingRe = regexp.MustCompile(`^(\d+(?:\.\d+)+)\s+(\S.*)$`)

	// keywordHeadingRe matches leading structural keywords.
	keywordHeadingRe = regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\b`)

	anchorSpaceRe  = regexp.MustCompile(`\s+`)
	anchorHyphenRe = regexp.MustCompile(`-+`)
)

// ClassifyHeading reports whether line is a heading candidate and returns
// the classified heading. Headings are recognized on flush-left lines
// only; indented numbered lines belong to the list classifier. Prefixed
// patterns require an uppercase letter after the prefix so that lowercase
// numbered list items are not swallowed.
func ClassifyHeading(line string) *types.Heading {
	if line == "" || line != strings.TrimLeft(line, " \t") {
		return nil
	}
	line = strings.TrimRight(line, " \t")

	// 1. Roman numeral prefix.
	if m := romanHeadingRe.FindStringSubmatch(line); m != nil && startsUpper(m[2]) {
		return newHeading(1, m[2])
	}

	// 2. Numeric prefix: level 2 for small numerals, 3 otherwise.
	if m := numericHeadingRe.FindStringSubmatch(line); m != nil && startsUpper(m[2]) {
		n, _ := strconv.Atoi(m[1])
		level := 3
		if n <= 3 {
			level = 2
		}
		return newHeading(level, m[2])
	}

	// 3. Single-letter prefix.
	if m := letterHeadingRe.FindStringSubmatch(line); m != nil && startsUpper(m[2]) {
		return newHeading(3, m[2])
	}

	// 4. Short all-uppercase line without terminal sentence punctuation.
	if isAllCapsHeading(line) {
		level := 3
		if len(line) < 30 {
			level = 2
		}
		return newHeading(level, titleCase(line))
	}

	// 5. Dotted numbering.
	if m := dottedHeadingRe.FindStringSubmatch(line); m != nil {
		return newHeading(2, m[2])
	}

	// 6. Structural keyword.
	if keywordHeadingRe.MatchString(line) {
		return newHeading(1, line)
	}

	return nil
}

func newHeading(level int, text string) *types.Heading {
	text = strings.TrimSpace(text)
	return &types.Heading{Level: level, Text: text, Anchor: Anchor(text)}
}

// Anchor derives the URL-safe slug for a heading: lowercase, strip
// characters outside word/space/hyphen, whitespace runs become single
// hyphens, repeated hyphens collapse, leading/trailing hyphens trimmed.
// Duplicate headings yield duplicate anchors; no suffix is added.
func Anchor(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' || r == '\t' || r == '-' {
			b.WriteRune(r)
		}
	}
	slug := anchorSpaceRe.ReplaceAllString(b.String(), "-")
	slug = anchorHyphenRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// isAllCapsHeading reports whether line is a short all-uppercase line with
// at least one letter and no terminal sentence punctuation.
func isAllCapsHeading(line string) bool {
	if len(line) >= 50 || line == "" {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?") {
		return false
	}
	hasLetter := false
	for _, r := range line {
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

// titleCase lowercases a line and capitalizes the first letter of each
// whitespace-separated word, for all-caps heading display text.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
