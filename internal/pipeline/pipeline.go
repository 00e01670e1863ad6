// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the reconstruction stages: rule-based
// correction, structure rebuilding, optional spell correction, flow
// normalization, and rendering. The stage order is fixed.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/reflow-engine/internal/correct"
	"github.com/pdiddy/reflow-engine/internal/flow"
	"github.com/pdiddy/reflow-engine/internal/render"
	"github.com/pdiddy/reflow-engine/internal/spell"
	"github.com/pdiddy/reflow-engine/internal/structure"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

// Result is the outcome of processing one document.
type Result struct {
	// Output is the rendered document in the configured format.
	Output string

	// Headings lists the classified headings in document order.
	Headings []types.Heading

	// PageCount is the number of input pages.
	PageCount int

	// AverageConfidence is the mean recognition confidence across pages.
	AverageConfidence float64

	// LowConfidencePages holds the page numbers flagged below the
	// configured threshold. Flagged pages are still processed.
	LowConfidencePages []int
}

// Orchestrator runs the fixed stage sequence over documents. One
// orchestrator may process multiple documents concurrently; all shared
// state is read-only after construction.
type Orchestrator struct {
	cfg       types.PipelineConfig
	engine    *correct.Engine
	corrector *spell.Corrector
	now       func() time.Time
}

// New creates an orchestrator with the built-in correction rule tables.
func New(cfg *types.PipelineConfig) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pipeline config is nil")
	}
	return NewWithRules(cfg, correct.DefaultRules())
}

// NewWithRules creates an orchestrator using the given ordered rule
// table instead of the built-in one. When a remote dictionary service
// is configured but unusable, the local fallback oracle substitutes
// transparently.
func NewWithRules(cfg *types.PipelineConfig, rules []types.CorrectionRule) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("pipeline config is nil")
	}

	engine, err := correct.NewEngine(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile correction rules: %w", err)
	}

	var oracle spell.Oracle
	if httpOracle, err := spell.NewHTTPOracle(cfg.Speller); err == nil {
		oracle = httpOracle
	} else {
		oracle = spell.NewFallbackOracle()
	}

	return &Orchestrator{
		cfg:       *cfg,
		engine:    engine,
		corrector: spell.NewCorrector(oracle, cfg.CustomDictionary, cfg.AggressiveCorrection),
		now:       time.Now,
	}, nil
}

// placeholderLines stands in for documents with no usable text, so
// consumers always receive a renderable result.
var placeholderLines = []types.LogicalLine{
	{
		Kind:    types.LineHeading,
		Text:    "Empty Document",
		Heading: &types.Heading{Level: 1, Text: "Empty Document", Anchor: "empty-document"},
	},
	types.BlankLine(),
	types.ParagraphLine("No readable text was recovered from the source."),
}

// Process runs the full stage sequence over doc. Cancellation is
// checked between stages; a cancelled run discards partial output. The
// only error conditions besides cancellation are a nil document and an
// unknown output format.
func (o *Orchestrator) Process(ctx context.Context, doc *types.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	result := &Result{
		PageCount:          len(doc.Pages),
		AverageConfidence:  doc.AverageConfidence(),
		LowConfidencePages: doc.LowConfidencePages(o.cfg.Threshold()),
	}

	combined := combinePages(doc.Pages)
	if strings.TrimSpace(combined) == "" {
		output, err := render.Render(placeholderLines, o.renderOptions(doc, placeholderLines))
		if err != nil {
			return nil, err
		}
		result.Output = output
		return result, nil
	}

	corrected := o.engine.Apply(combined)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := structure.Rebuild(corrected)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if o.cfg.EnableSpellCheck {
		lines = o.corrector.CorrectLines(ctx, lines)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	lines = flow.NormalizeLines(lines)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := render.Render(lines, o.renderOptions(doc, lines))
	if err != nil {
		return nil, err
	}

	result.Output = output
	result.Headings = collectHeadings(lines)
	return result, nil
}

// combinePages concatenates page text in source order with separator
// lines between pages.
func combinePages(pages []types.Page) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(types.PageSeparator(p.PageNumber))
			b.WriteString("\n")
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

func (o *Orchestrator) renderOptions(doc *types.Document, lines []types.LogicalLine) render.Options {
	title := doc.Source
	for _, line := range lines {
		if line.Kind == types.LineHeading {
			title = line.Heading.Text
			break
		}
	}

	return render.Options{
		Format:             o.cfg.OutputFormat,
		IncludeMetadata:    o.cfg.IncludeMetadata,
		IncludeTOC:         o.cfg.IncludeTableOfContents,
		PreserveFormatting: o.cfg.PreserveFormatting,
		Title:              title,
		Source:             doc.Source,
		ProcessedAt:        o.now().UTC(),
	}
}

func collectHeadings(lines []types.LogicalLine) []types.Heading {
	var headings []types.Heading
	for _, line := range lines {
		if line.Kind == types.LineHeading {
			headings = append(headings, *line.Heading)
		}
	}
	return headings
}
