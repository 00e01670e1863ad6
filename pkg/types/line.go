// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LineKind classifies a logical line after structure reconstruction.
type LineKind string

const (
	LineParagraph LineKind = "paragraph"
	LineHeading   LineKind = "heading"
	LineListItem  LineKind = "list_item"
	LineBlank     LineKind = "blank"
)

// Heading is a classified heading line. Headings are immutable after
// classification; the table of contents is a read-only projection over
// the heading sequence.
type Heading struct {
	// Level is the heading depth, always in 1..6.
	Level int `json:"level" yaml:"level"`

	// Text is the display text with any numbering prefix stripped.
	Text string `json:"text" yaml:"text"`

	// Anchor is the URL-safe slug derived deterministically from Text.
	// Duplicate headings produce duplicate anchors; no suffix is added.
	Anchor string `json:"anchor" yaml:"anchor"`
}

// ListItem is a classified list-item line.
type ListItem struct {
	// Level is the nesting depth derived from leading indentation,
	// starting at 1.
	Level int `json:"level" yaml:"level"`

	// Numbered is true for "1." / "1)" items, false for bullets.
	Numbered bool `json:"numbered" yaml:"numbered"`

	// Marker is the original marker text for numbered items ("3.", "12)")
	// and the canonical "-" for bullets.
	Marker string `json:"marker" yaml:"marker"`

	// Text is the item text after the marker.
	Text string `json:"text" yaml:"text"`
}

// LogicalLine is one reconstructed line of the document. Exactly one of
// Heading and Item is set for the corresponding kinds; paragraph and blank
// lines carry only Text.
type LogicalLine struct {
	Kind    LineKind  `json:"kind" yaml:"kind"`
	Text    string    `json:"text" yaml:"text"`
	Heading *Heading  `json:"heading,omitempty" yaml:"heading,omitempty"`
	Item    *ListItem `json:"item,omitempty" yaml:"item,omitempty"`
}

// BlankLine returns the canonical blank logical line.
func BlankLine() LogicalLine {
	return LogicalLine{Kind: LineBlank}
}

// ParagraphLine returns a paragraph logical line with the given text.
func ParagraphLine(text string) LogicalLine {
	return LogicalLine{Kind: LineParagraph, Text: text}
}
