// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flow normalizes whitespace, punctuation spacing, and
// sentence-initial capitalization on reconstructed line text. Normalize is
// pure and idempotent: applying it to already-normalized text is a no-op.
package flow

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/reflow-engine/internal/structure"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

var (
	whitespaceRunRe   = regexp.MustCompile(`\s+`)
	spaceBeforePunct  = regexp.MustCompile(`\s+([,.;:!?])`)
	missingSpaceAfter = regexp.MustCompile(`([.!?])(\p{L})`)
	capitalizeAfterRe = regexp.MustCompile(`([.!?] )(\p{Ll})`)

	// Same URL and email shapes the renderer links; their dots are not
	// sentence stops.
	linkTokenRe = regexp.MustCompile(`https?://[^\s<>()\[\]]+|[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// Normalize cleans one line of text: whitespace runs collapse to a single
// space, stray space before punctuation is removed, sentence punctuation
// is followed by exactly one space before a letter, and the letter after a
// sentence stop is uppercased. URLs and email addresses pass through the
// punctuation rules untouched. Columnar and 4-space-indented lines pass
// through entirely; their spacing feeds the renderer's table and code
// detection.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	if structure.IsColumnar(text) || strings.HasPrefix(text, "    ") {
		return text
	}

	out := whitespaceRunRe.ReplaceAllString(strings.TrimSpace(text), " ")

	// Set URLs and email addresses aside before the punctuation rules run.
	var links []string
	out = linkTokenRe.ReplaceAllStringFunc(out, func(m string) string {
		links = append(links, m)
		return "\x00" + strconv.Itoa(len(links)-1) + "\x00"
	})

	out = spaceBeforePunct.ReplaceAllString(out, "$1")
	out = missingSpaceAfter.ReplaceAllString(out, "$1 $2")
	out = capitalizeAfterRe.ReplaceAllStringFunc(out, func(m string) string {
		r := []rune(m)
		r[len(r)-1] = unicode.ToUpper(r[len(r)-1])
		return string(r)
	})

	for i, link := range links {
		out = strings.Replace(out, "\x00"+strconv.Itoa(i)+"\x00", link, 1)
	}
	return out
}

// NormalizeLines applies Normalize to the text of paragraph and list-item
// lines. Headings are immutable after classification and blanks carry no
// text, so both pass through unchanged.
func NormalizeLines(lines []types.LogicalLine) []types.LogicalLine {
	out := make([]types.LogicalLine, len(lines))
	for i, l := range lines {
		switch l.Kind {
		case types.LineParagraph:
			l.Text = Normalize(l.Text)
		case types.LineListItem:
			item := *l.Item
			item.Text = Normalize(item.Text)
			l.Item = &item
			l.Text = item.Text
		}
		out[i] = l
	}
	return out
}
