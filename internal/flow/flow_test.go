// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"testing"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"collapse whitespace", "too   many \t spaces", "too many spaces"},
		{"space before comma", "wait , stop", "wait, stop"},
		{"space before period", "the end .", "the end."},
		{"missing space after stop", "First.second sentence", "First. Second sentence"},
		{"capitalize after stop", "one done. two starts", "one done. Two starts"},
		{"capitalize after question", "done? yes indeed", "done? Yes indeed"},
		{"already clean", "Nothing to fix here.", "Nothing to fix here."},
		{"empty", "", ""},
		{"columnar untouched", "Name    Age", "Name    Age"},
		{"indented code untouched", "    x := 1", "    x := 1"},
		{"url dots kept", "Visit https://example.com/docs for details", "Visit https://example.com/docs for details"},
		{"email dots kept", "mail jane.doe@example.com today", "mail jane.doe@example.com today"},
		{"url with surrounding fixes", "see  https://a.io/x.html , ok", "see https://a.io/x.html, ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalize applied twice must equal Normalize applied once.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"too   many spaces , and . bad.spacing here",
		"First.second. third?fourth",
		"clean already. Nothing changes.",
		"Name    Age",
		"    indented code block",
		"Go to https://example.com/a.b.c then stop. next one",
		"write to jane.doe@example.com , please",
		"",
		"trailing spaces   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeLines(t *testing.T) {
	heading := &types.Heading{Level: 2, Text: "RAW  HEADING", Anchor: "raw-heading"}
	in := []types.LogicalLine{
		{Kind: types.LineParagraph, Text: "messy  text , here"},
		{Kind: types.LineHeading, Text: heading.Text, Heading: heading},
		{Kind: types.LineListItem, Text: "item  text .", Item: &types.ListItem{Level: 1, Marker: "-", Text: "item  text ."}},
		{Kind: types.LineBlank},
	}

	out := NormalizeLines(in)

	if out[0].Text != "messy text, here" {
		t.Errorf("paragraph: got %q", out[0].Text)
	}
	if out[1].Heading.Text != "RAW  HEADING" {
		t.Errorf("heading mutated: %q", out[1].Heading.Text)
	}
	if out[2].Item.Text != "item text." {
		t.Errorf("list item: got %q", out[2].Item.Text)
	}
	// The input slice's items must not be mutated.
	if in[2].Item.Text != "item  text ." {
		t.Errorf("input list item mutated: %q", in[2].Item.Text)
	}
}