// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"regexp"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

var (
	// bulletItemRe matches bullet markers followed by whitespace.
	bulletItemRe = regexp.MustCompile(`^([ \t]*)([•◦‣⁃\-*])\s+(.+)$`)

	// numberedItemRe matches "1." or "1)" markers followed by whitespace.
	numberedItemRe = regexp.MustCompile(`^([ \t]*)(\d+[.)])\s+(.+)$`)
)

// BulletMarker is the canonical marker all bullet styles normalize to.
const BulletMarker = "-"

// ClassifyListItem reports whether line is a list item. Nesting level is
// derived from the leading indentation width: level = width/2 + 1, with a
// tab counting as two columns. Bullet markers normalize to BulletMarker;
// numbered items keep their original marker text.
func ClassifyListItem(line string) *types.ListItem {
	if m := bulletItemRe.FindStringSubmatch(line); m != nil {
		return &types.ListItem{
			Level:  indentLevel(m[1]),
			Marker: BulletMarker,
			Text:   m[3],
		}
	}
	if m := numberedItemRe.FindStringSubmatch(line); m != nil {
		return &types.ListItem{
			Level:    indentLevel(m[1]),
			Numbered: true,
			Marker:   m[2],
			Text:     m[3],
		}
	}
	return nil
}

func indentLevel(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 2
		} else {
			width++
		}
	}
	return width/2 + 1
}
