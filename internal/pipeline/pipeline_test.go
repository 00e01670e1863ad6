// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func newTestOrchestrator(t *testing.T, cfg types.PipelineConfig) *Orchestrator {
	t.Helper()
	o, err := New(&cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	o.now = fixedNow
	return o
}

func TestProcessEndToEnd(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{
		EnableSpellCheck:       true,
		IncludeTableOfContents: true,
	})

	doc := &types.Document{
		Source: "scan.json",
		Pages: []types.Page{
			{PageNumber: 1, Text: "HELLO WORLD\n\nThis is a test.", Confidence: 95},
		},
	}

	result, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := "- [Hello World](#hello-world)\n\n## Hello World\n\nThis is a test.\n"
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}

	if len(result.Headings) != 1 {
		t.Fatalf("Headings = %v, want one entry", result.Headings)
	}
	h := result.Headings[0]
	if h.Level != 2 || h.Text != "Hello World" || h.Anchor != "hello-world" {
		t.Errorf("heading = %+v", h)
	}

	if result.AverageConfidence != 95 {
		t.Errorf("AverageConfidence = %v, want 95", result.AverageConfidence)
	}
	if len(result.LowConfidencePages) != 0 {
		t.Errorf("LowConfidencePages = %v, want none", result.LowConfidencePages)
	}
}

func TestProcessWithMetadata(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{IncludeMetadata: true})

	doc := &types.Document{
		Source: "scan.json",
		Pages: []types.Page{
			{PageNumber: 1, Text: "HELLO WORLD\n\nThis is a test.", Confidence: 95},
		},
	}

	result, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !strings.HasPrefix(result.Output, "---\ntitle: \"Hello World\"\n") {
		t.Errorf("metadata block missing or wrong title:\n%s", result.Output)
	}
	if !strings.Contains(result.Output, "source: \"scan.json\"") {
		t.Errorf("metadata source missing:\n%s", result.Output)
	}
	if !strings.Contains(result.Output, "processed_date: \"2026-03-14T09:30:00Z\"") {
		t.Errorf("metadata timestamp missing:\n%s", result.Output)
	}
}

func TestProcessNilDocument(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{})

	if _, err := o.Process(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil document")
	}
}

func TestProcessEmptyDocument(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{})

	tests := []*types.Document{
		{Source: "empty"},
		{Source: "blank", Pages: []types.Page{{PageNumber: 1, Text: "  \n\n \t "}}},
	}

	for _, doc := range tests {
		result, err := o.Process(context.Background(), doc)
		if err != nil {
			t.Fatalf("Process(%s): %v", doc.Source, err)
		}
		if result.Output == "" {
			t.Errorf("Process(%s) produced empty output", doc.Source)
		}
		if !strings.Contains(result.Output, "Empty Document") {
			t.Errorf("Process(%s) missing placeholder:\n%s", doc.Source, result.Output)
		}
	}
}

func TestProcessCancelled(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := &types.Document{
		Source: "doc",
		Pages:  []types.Page{{PageNumber: 1, Text: "Some text here.", Confidence: 90}},
	}

	result, err := o.Process(ctx, doc)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if result != nil {
		t.Errorf("partial result returned after cancellation: %+v", result)
	}
}

func TestProcessLowConfidencePages(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{ConfidenceThreshold: 80})

	doc := &types.Document{
		Source: "doc",
		Pages: []types.Page{
			{PageNumber: 1, Text: "First page text.", Confidence: 40},
			{PageNumber: 2, Text: "Second page text.", Confidence: 95},
		},
	}

	result, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(result.LowConfidencePages) != 1 || result.LowConfidencePages[0] != 1 {
		t.Errorf("LowConfidencePages = %v, want [1]", result.LowConfidencePages)
	}
	if result.AverageConfidence != 67.5 {
		t.Errorf("AverageConfidence = %v, want 67.5", result.AverageConfidence)
	}
}

func TestProcessParagraphSpansPages(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{})

	doc := &types.Document{
		Source: "doc",
		Pages: []types.Page{
			{PageNumber: 1, Text: "This sentence continues", Confidence: 90},
			{PageNumber: 2, Text: "onto the next line.", Confidence: 90},
		},
	}

	result, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := "This sentence continues onto the next line.\n"
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
}

func TestProcessSpellCheckGate(t *testing.T) {
	doc := &types.Document{
		Source: "doc",
		Pages:  []types.Page{{PageNumber: 1, Text: "This is a wrold test.", Confidence: 90}},
	}

	off := newTestOrchestrator(t, types.PipelineConfig{})
	result, err := off.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(result.Output, "wrold") {
		t.Errorf("spell check ran while disabled: %q", result.Output)
	}

	on := newTestOrchestrator(t, types.PipelineConfig{EnableSpellCheck: true})
	result, err = on.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(result.Output, "world") {
		t.Errorf("spell check did not run: %q", result.Output)
	}
}

// Columnar rows must reach the renderer with their spacing intact even
// when the spell-check stage is on.
func TestProcessTableSurvivesSpellCheck(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{EnableSpellCheck: true})

	doc := &types.Document{
		Source: "doc",
		Pages:  []types.Page{{PageNumber: 1, Text: "Name    Age\nAlice   30", Confidence: 90}},
	}

	result, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := "| Name | Age |\n| --- | --- |\n| Alice | 30 |\n"
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
}

func TestProcessDeterministic(t *testing.T) {
	o := newTestOrchestrator(t, types.PipelineConfig{
		EnableSpellCheck:       true,
		IncludeMetadata:        true,
		IncludeTableOfContents: true,
	})

	doc := &types.Document{
		Source: "doc",
		Pages: []types.Page{
			{PageNumber: 1, Text: "CHAPTER 1. Results\n\nName    Age\nAlice   30", Confidence: 85},
		},
	}

	first, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := o.Process(context.Background(), doc)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if first.Output != second.Output {
		t.Error("identical input produced different output")
	}
}
