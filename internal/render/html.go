// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

var htmlMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderHTML converts the markdown rendering to HTML. The metadata
// block is markdown front matter and has no HTML equivalent, so it is
// omitted from this format.
func renderHTML(lines []types.LogicalLine, opts Options) (string, error) {
	mdOpts := opts
	mdOpts.Format = types.OutputMarkdown
	mdOpts.IncludeMetadata = false
	md := renderMarkdown(lines, mdOpts)

	var buf bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}
