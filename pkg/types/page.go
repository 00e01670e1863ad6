// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the reflow pipeline:
// pages as received from the recognition engine, logical lines produced by
// structure reconstruction, correction rules, and stage configuration.
package types

import "fmt"

// DefaultLowConfidence is the confidence threshold below which a page is
// flagged as low-confidence when no explicit threshold is configured.
const DefaultLowConfidence = 70.0

// Page is one unit of recognized text as delivered by the external
// recognition collaborator. Pages are immutable once received.
type Page struct {
	// PageNumber is the 1-based page number in source order.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// Text is the raw recognized text for the page.
	Text string `json:"text" yaml:"text"`

	// Confidence is the recognition confidence in [0,100]. Direct text
	// extraction (no recognition pass) reports a fixed 100.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// IsTextOnly marks pages produced by direct text extraction rather
	// than optical recognition.
	IsTextOnly bool `json:"is_text_only" yaml:"is_text_only"`
}

// ClampConfidence returns the page's confidence clamped to [0,100].
func (p Page) ClampConfidence() float64 {
	switch {
	case p.Confidence < 0:
		return 0
	case p.Confidence > 100:
		return 100
	default:
		return p.Confidence
	}
}

// Document is an ordered sequence of pages from one source. Page order is
// preserved exactly as received; the pipeline never reorders pages.
type Document struct {
	// Source identifies where the pages came from (a path, URL, or label).
	Source string `json:"source" yaml:"source"`

	// Pages holds the recognized pages in source order.
	Pages []Page `json:"pages" yaml:"pages"`
}

// PageSeparator returns the separator line inserted between pages when the
// document is concatenated into a single text stream.
func PageSeparator(pageNumber int) string {
	return fmt.Sprintf("--- Page %d ---", pageNumber)
}

// AverageConfidence returns the mean clamped confidence across all pages,
// or 0 for an empty document.
func (d Document) AverageConfidence() float64 {
	if len(d.Pages) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range d.Pages {
		sum += p.ClampConfidence()
	}
	return sum / float64(len(d.Pages))
}

// LowConfidencePages returns the page numbers whose clamped confidence is
// below threshold, in document order. Pages are flagged, never dropped.
func (d Document) LowConfidencePages(threshold float64) []int {
	var pages []int
	for _, p := range d.Pages {
		if p.ClampConfidence() < threshold {
			pages = append(pages, p.PageNumber)
		}
	}
	return pages
}
