package structure

import (
	"testing"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

func kinds(lines []types.LogicalLine) []types.LineKind {
	out := make([]types.LineKind, len(lines))
	for i, l := range lines {
		out[i] = l.Kind
	}
	return out
}

func TestRebuildMergesWrappedLines(t *testing.T) {
	lines := Rebuild("This sentence continues\nonto the next line.")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(lines), lines)
	}
	want := "This sentence continues onto the next line."
	if lines[0].Kind != types.LineParagraph || lines[0].Text != want {
		t.Errorf("got %+v, want paragraph %q", lines[0], want)
	}
}

func TestRebuildKeepsSentenceBoundary(t *testing.T) {
	lines := Rebuild("This ends.\nNext Sentence starts.")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Text != "This ends." || lines[1].Text != "Next Sentence starts." {
		t.Errorf("unexpected paragraphs: %+v", lines)
	}
}

func TestRebuildUnterminatedUppercaseContinuation(t *testing.T) {
	// Last buffered line has no terminal punctuation, so an uppercase
	// start still merges.
	lines := Rebuild("The committee met with\nDr. Smith on Monday.")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(lines), lines)
	}
	if lines[0].Text != "The committee met with Dr. Smith on Monday." {
		t.Errorf("got %q", lines[0].Text)
	}
}

func TestRebuildDropsPageSeparators(t *testing.T) {
	// The separator is dropped without flushing: the paragraph spans the
	// page break.
	lines := Rebuild("first half of a sentence\n--- Page 2 ---\ncontinues after the break.")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(lines), lines)
	}
	if lines[0].Text != "first half of a sentence continues after the break." {
		t.Errorf("got %q", lines[0].Text)
	}
}

func TestRebuildBlankLineFlushes(t *testing.T) {
	lines := Rebuild("one paragraph here\n\nanother paragraph here")
	got := kinds(lines)
	want := []types.LineKind{types.LineParagraph, types.LineBlank, types.LineParagraph}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRebuildHeadingStandalone(t *testing.T) {
	lines := Rebuild("text before the heading\nHELLO WORLD\nand text after it")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %+v", len(lines), lines)
	}
	h := lines[1]
	if h.Kind != types.LineHeading || h.Heading == nil {
		t.Fatalf("middle line is not a heading: %+v", h)
	}
	if h.Heading.Level != 2 || h.Heading.Text != "Hello World" {
		t.Errorf("got heading %+v", h.Heading)
	}
}

func TestRebuildListItemStandalone(t *testing.T) {
	lines := Rebuild("intro line without stop\n- first item\n- second item")
	got := kinds(lines)
	if len(got) != 3 || got[0] != types.LineParagraph || got[1] != types.LineListItem || got[2] != types.LineListItem {
		t.Fatalf("got %v", got)
	}
	if lines[1].Item.Marker != "-" || lines[1].Item.Text != "first item" {
		t.Errorf("got item %+v", lines[1].Item)
	}
}

func TestRebuildColumnarLinesStayStandalone(t *testing.T) {
	lines := Rebuild("Name    Age\nAlice   30")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Text != "Name    Age" || lines[1].Text != "Alice   30" {
		t.Errorf("columnar spacing lost: %+v", lines)
	}
}

func TestRebuildHyphenWrapJoin(t *testing.T) {
	lines := Rebuild("complete infor-\nmation was provided.")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(lines), lines)
	}
	if lines[0].Text != "complete information was provided." {
		t.Errorf("got %q", lines[0].Text)
	}
}

func TestRebuildIndentedCodeKeepsIndent(t *testing.T) {
	lines := Rebuild("    x := compute()\n    return x")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Text != "    x := compute()" {
		t.Errorf("indentation lost: %q", lines[0].Text)
	}
}

func TestRebuildEmptyInput(t *testing.T) {
	if lines := Rebuild(""); len(lines) != 1 || lines[0].Kind != types.LineBlank {
		// A single empty string splits to one empty line.
		t.Errorf("got %+v", lines)
	}
}

func TestIsColumnar(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Name    Age", true},
		{"Name\tAge", true},
		{"a  b  c", true},
		{"just a sentence", false},
		{"single", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsColumnar(tt.in); got != tt.want {
			t.Errorf("IsColumnar(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
