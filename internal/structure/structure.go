// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure rebuilds logical lines from the corrected text stream:
// wrapped lines merge back into paragraphs while headings and list items
// stay standalone. The heuristics operate on line content only; spatial
// coordinates are not available, so genuine multi-column interleaving
// cannot be fully restored.
package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// pageSeparatorRe matches the separator lines the orchestrator inserts
// between pages. They are dropped without flushing the paragraph buffer so
// a paragraph can continue across a page boundary.
var pageSeparatorRe = regexp.MustCompile(`^--- Page \d+ ---$`)

// columnSplitRe separates columnar fields: two-plus spaces or a tab.
var columnSplitRe = regexp.MustCompile(`[ ]{2,}|\t`)

// IsColumnar reports whether line holds two or more fields separated by
// runs of two-plus spaces or tabs. Such lines are table candidates; their
// interior spacing is load-bearing and they are never merged or collapsed.
func IsColumnar(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := 0
	for _, cell := range columnSplitRe.Split(line, -1) {
		if strings.TrimSpace(cell) != "" {
			fields++
		}
	}
	return fields >= 2
}

// SplitColumns returns the non-empty fields of a columnar line, in order.
func SplitColumns(line string) []string {
	var cells []string
	for _, cell := range columnSplitRe.Split(strings.TrimSpace(line), -1) {
		if c := strings.TrimSpace(cell); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// isIndentedCode reports whether the raw line is indented by four-plus
// spaces and contains alphanumeric content, the renderer's code heuristic.
func isIndentedCode(raw string) bool {
	if !strings.HasPrefix(raw, "    ") {
		return false
	}
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// folder is the accumulator threaded through the line fold. buf holds the
// raw lines of the paragraph not yet flushed.
type folder struct {
	lines []types.LogicalLine
	buf   []string
}

// flush emits the pending paragraph buffer, joined with single spaces.
func (f *folder) flush() {
	if len(f.buf) == 0 {
		return
	}
	f.lines = append(f.lines, types.ParagraphLine(strings.Join(f.buf, " ")))
	f.buf = nil
}

// merge appends line to the paragraph buffer. A trailing hyphen after a
// lowercase letter, met by a lowercase continuation, is a wrapped word:
// join without a space and drop the hyphen.
func (f *folder) merge(line string) {
	if n := len(f.buf); n > 0 {
		last := f.buf[n-1]
		if endsWithWrapHyphen(last) && !startsUpper(line) {
			f.buf[n-1] = strings.TrimSuffix(last, "-") + line
			return
		}
	}
	f.buf = append(f.buf, line)
}

func endsWithWrapHyphen(s string) bool {
	r := []rune(s)
	return len(r) >= 2 && r[len(r)-1] == '-' && unicode.IsLower(r[len(r)-2])
}

// Rebuild folds the corrected text into a sequence of logical lines. The
// fold is referentially transparent: all state lives in the accumulator
// value, and identical input yields identical output.
func Rebuild(text string) []types.LogicalLine {
	f := &folder{}

	for _, line := range strings.Split(text, "\n") {
		raw := strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(raw)

		switch {
		case pageSeparatorRe.MatchString(trimmed):
			// Dropped without flushing: paragraphs span page breaks.

		case trimmed == "":
			f.flush()
			f.lines = append(f.lines, types.BlankLine())

		default:
			if h := ClassifyHeading(raw); h != nil {
				f.flush()
				f.lines = append(f.lines, types.LogicalLine{Kind: types.LineHeading, Text: h.Text, Heading: h})
				continue
			}
			if item := ClassifyListItem(raw); item != nil {
				f.flush()
				f.lines = append(f.lines, types.LogicalLine{Kind: types.LineListItem, Text: item.Text, Item: item})
				continue
			}
			if isIndentedCode(raw) {
				// Keep the indentation; the renderer's fence heuristic
				// needs to see it.
				f.flush()
				f.lines = append(f.lines, types.ParagraphLine(raw))
				continue
			}
			if IsColumnar(trimmed) {
				f.flush()
				f.lines = append(f.lines, types.ParagraphLine(trimmed))
				continue
			}
			f.fold(trimmed)
		}
	}

	f.flush()
	return f.lines
}

// fold applies the merge-vs-new-paragraph decision, in priority order.
func (f *folder) fold(line string) {
	// (a) Empty buffer: start a new paragraph.
	if len(f.buf) == 0 {
		f.buf = append(f.buf, line)
		return
	}

	// (b) A heading-shaped line never merges into a paragraph.
	if ClassifyHeading(line) != nil {
		f.flush()
		f.buf = append(f.buf, line)
		return
	}

	last := f.buf[len(f.buf)-1]
	lastTerminated := endsSentence(last)

	// (c) Terminated sentence followed by an uppercase start is a genuine
	// paragraph boundary.
	if lastTerminated && startsUpper(line) {
		f.flush()
		f.buf = append(f.buf, line)
		return
	}

	// (d) A lowercase start is a wrapped continuation.
	if !startsUpper(line) {
		f.merge(line)
		return
	}

	// (e) An unterminated sentence continues.
	if !lastTerminated {
		f.merge(line)
		return
	}

	// (f) Otherwise start a new paragraph.
	f.flush()
	f.buf = append(f.buf, line)
}

func endsSentence(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}
