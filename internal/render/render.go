// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns classified logical lines into output documents.
// Markdown is the canonical format; txt and html are projections of it.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/reflow-engine/internal/structure"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

// DefaultGenerator is the generator tag written into metadata blocks.
const DefaultGenerator = "reflow-engine"

// Options controls rendering behavior for a single document.
type Options struct {
	Format             types.OutputFormat
	IncludeMetadata    bool
	IncludeTOC         bool
	PreserveFormatting bool

	Title       string
	Source      string
	ProcessedAt time.Time
	Generator   string
}

// Render produces the document in opts.Format. Identical lines and
// options always yield identical bytes.
func Render(lines []types.LogicalLine, opts Options) (string, error) {
	switch opts.Format {
	case "", types.OutputMarkdown:
		return renderMarkdown(lines, opts), nil
	case types.OutputText:
		return renderText(lines, opts), nil
	case types.OutputHTML:
		return renderHTML(lines, opts)
	default:
		return "", fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func renderMarkdown(lines []types.LogicalLine, opts Options) string {
	var out []string

	if opts.IncludeMetadata {
		out = append(out, metadataBlock(opts)...)
		out = append(out, "")
	}
	if opts.IncludeTOC {
		if toc := tocLines(lines); len(toc) > 0 {
			out = append(out, toc...)
			out = append(out, "")
		}
	}

	out = append(out, bodyLines(lines)...)
	return cleanup(out)
}

// bodyLines walks the logical lines carrying the code-fence flag and the
// table lookahead.
func bodyLines(lines []types.LogicalLine) []string {
	var out []string
	inFence := false

	closeFence := func() {
		if inFence {
			out = append(out, "```")
			inFence = false
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch line.Kind {
		case types.LineBlank:
			closeFence()
			out = append(out, "")

		case types.LineHeading:
			closeFence()
			if n := len(out); n > 0 && out[n-1] != "" {
				out = append(out, "")
			}
			out = append(out, strings.Repeat("#", line.Heading.Level)+" "+line.Heading.Text)

		case types.LineListItem:
			closeFence()
			item := line.Item
			indent := strings.Repeat("  ", item.Level-1)
			out = append(out, indent+item.Marker+" "+inlinePass(item.Text))

		case types.LineParagraph:
			if inFence {
				if isCodeLike(line.Text) {
					out = append(out, line.Text)
					continue
				}
				closeFence()
			}

			if structure.IsColumnar(line.Text) {
				run := columnarRun(lines, i)
				if run >= 2 {
					out = append(out, tableLines(lines[i:i+run])...)
					i += run - 1
					continue
				}
				out = append(out, inlinePass(line.Text))
				continue
			}

			if isCodeLike(line.Text) {
				out = append(out, "```", line.Text)
				inFence = true
				continue
			}

			out = append(out, inlinePass(line.Text))
		}
	}

	closeFence()
	return out
}

// columnarRun returns the length of the run of consecutive columnar
// paragraph lines starting at index i.
func columnarRun(lines []types.LogicalLine, i int) int {
	run := 0
	for ; i+run < len(lines); run++ {
		l := lines[i+run]
		if l.Kind != types.LineParagraph || !structure.IsColumnar(l.Text) {
			break
		}
	}
	return run
}

// tableLines renders a columnar run as a pipe table. The separator row
// is synthesized after the first row, sized to its column count.
func tableLines(run []types.LogicalLine) []string {
	var out []string
	for i, line := range run {
		cells := structure.SplitColumns(line.Text)
		out = append(out, "| "+strings.Join(cells, " | ")+" |")
		if i == 0 {
			sep := make([]string, len(cells))
			for j := range sep {
				sep[j] = "---"
			}
			out = append(out, "| "+strings.Join(sep, " | ")+" |")
		}
	}
	return out
}

// tocLines renders the table of contents as nested bullets, one per
// heading, in document order.
func tocLines(lines []types.LogicalLine) []string {
	var out []string
	for _, line := range lines {
		if line.Kind != types.LineHeading {
			continue
		}
		h := line.Heading
		indent := strings.Repeat("  ", h.Level-1)
		out = append(out, fmt.Sprintf("%s- [%s](#%s)", indent, h.Text, h.Anchor))
	}
	return out
}

func metadataBlock(opts Options) []string {
	generator := opts.Generator
	if generator == "" {
		generator = DefaultGenerator
	}
	processed := opts.ProcessedAt
	if processed.IsZero() {
		processed = time.Now()
	}
	title := opts.Title
	if title == "" {
		title = opts.Source
	}

	return []string{
		"---",
		fmt.Sprintf("title: %q", title),
		fmt.Sprintf("source: %q", opts.Source),
		fmt.Sprintf("processed_date: %q", processed.Format(time.RFC3339)),
		fmt.Sprintf("generator: %q", generator),
		"---",
	}
}

// cleanup collapses runs of three-plus blank lines to two, trims
// trailing whitespace per line, and ends the document with exactly one
// newline.
func cleanup(lines []string) string {
	var out []string
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n"
}
