package structure

import (
	"testing"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *types.Heading
	}{
		{
			name: "roman numeral prefix",
			in:   "II. Background",
			want: &types.Heading{Level: 1, Text: "Background", Anchor: "background"},
		},
		{
			name: "numeric prefix small numeral",
			in:   "3. Methods",
			want: &types.Heading{Level: 2, Text: "Methods", Anchor: "methods"},
		},
		{
			name: "numeric prefix large numeral",
			in:   "12. Appendices",
			want: &types.Heading{Level: 3, Text: "Appendices", Anchor: "appendices"},
		},
		{
			name: "numeric prefix with parenthesis",
			in:   "2) Results",
			want: &types.Heading{Level: 2, Text: "Results", Anchor: "results"},
		},
		{
			name: "single letter prefix",
			in:   "B. Supplementary Material",
			want: &types.Heading{Level: 3, Text: "Supplementary Material", Anchor: "supplementary-material"},
		},
		{
			name: "all caps short line",
			in:   "HELLO WORLD",
			want: &types.Heading{Level: 2, Text: "Hello World", Anchor: "hello-world"},
		},
		{
			name: "all caps longer line",
			in:   "A RATHER LONG UPPERCASE HEADING LINE",
			want: &types.Heading{Level: 3, Text: "A Rather Long Uppercase Heading Line", Anchor: "a-rather-long-uppercase-heading-line"},
		},
		{
			name: "dotted numbering",
			in:   "2.3 Evaluation Setup",
			want: &types.Heading{Level: 2, Text: "Evaluation Setup", Anchor: "evaluation-setup"},
		},
		{
			name: "chapter keyword",
			in:   "Chapter One: The Beginning",
			want: &types.Heading{Level: 1, Text: "Chapter One: The Beginning", Anchor: "chapter-one-the-beginning"},
		},
		{
			name: "appendix keyword lowercase",
			in:   "appendix b",
			want: &types.Heading{Level: 1, Text: "appendix b", Anchor: "appendix-b"},
		},
		{name: "plain sentence", in: "This is just a sentence.", want: nil},
		{name: "all caps with terminal period", in: "STOP HERE.", want: nil},
		{name: "indented numeric line", in: "  1. Indented item", want: nil},
		{name: "numbered list lowercase text", in: "1. first of several steps", want: nil},
		{name: "empty", in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyHeading(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ClassifyHeading(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ClassifyHeading(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// The numeric-prefix pattern appears before the all-caps pattern in the
// table, so a line matching both classifies as numeric.
func TestClassifyHeadingPrecedence(t *testing.T) {
	got := ClassifyHeading("1. INTRODUCTION")
	if got == nil {
		t.Fatal("expected a heading")
	}
	if got.Level != 2 || got.Text != "INTRODUCTION" {
		t.Errorf("got %+v, want level 2 INTRODUCTION", got)
	}
	if got.Anchor != "introduction" {
		t.Errorf("got anchor %q", got.Anchor)
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"HELLO WORLD", "hello-world"},
		{"What's New?", "whats-new"},
		{"  spaced   out  ", "spaced-out"},
		{"pre-hyphenated - title", "pre-hyphenated-title"},
		{"C++ & Go!", "c-go"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Anchor(tt.in); got != tt.want {
			t.Errorf("Anchor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
