// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// renderText is the markup-free projection: heading and list structure
// survive as plain lines, inline markers and links are never added.
func renderText(lines []types.LogicalLine, opts Options) string {
	var out []string

	if opts.IncludeMetadata {
		out = append(out, metadataBlock(opts)...)
		out = append(out, "")
	}

	for _, line := range lines {
		switch line.Kind {
		case types.LineBlank:
			out = append(out, "")
		case types.LineHeading:
			if n := len(out); n > 0 && out[n-1] != "" {
				out = append(out, "")
			}
			out = append(out, line.Heading.Text)
		case types.LineListItem:
			item := line.Item
			indent := strings.Repeat("  ", item.Level-1)
			out = append(out, indent+item.Marker+" "+item.Text)
		case types.LineParagraph:
			out = append(out, line.Text)
		}
	}

	return cleanup(out)
}
