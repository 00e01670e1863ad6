// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// Status is the outcome of processing one input file.
type Status int

const (
	// StatusDone means the output document was written.
	StatusDone Status = iota
	// StatusSkipped means the output already existed.
	StatusSkipped
	// StatusFailed means reading, processing, or writing failed.
	StatusFailed
)

// BatchResult holds the outcome of a batch processing run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the total number of input files handled.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed processing.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputExt returns the file extension for an output format.
func OutputExt(format types.OutputFormat) string {
	switch format {
	case types.OutputText:
		return ".txt"
	case types.OutputHTML:
		return ".html"
	default:
		return ".md"
	}
}

// ReadDocument loads a document from path. A .json file holds an array
// of page records; any other file is treated as direct text extraction,
// a single page at full confidence.
func ReadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := &types.Document{Source: filepath.Base(path)}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc.Pages); err != nil {
			return nil, fmt.Errorf("failed to parse page records in %s: %w", path, err)
		}
		return doc, nil
	}

	doc.Pages = []types.Page{{
		PageNumber: 1,
		Text:       string(data),
		Confidence: 100,
		IsTextOnly: true,
	}}
	return doc, nil
}

// ProcessFile processes one input file and writes the rendered output
// to outDir, reporting status to w. Existing outputs are never
// overwritten. The result is nil unless the file was processed.
func ProcessFile(ctx context.Context, o *Orchestrator, path, outDir string, w io.Writer) (Status, *Result) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+OutputExt(o.cfg.OutputFormat))

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		return StatusSkipped, nil
	}

	doc, err := ReadDocument(path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed, nil
	}

	result, err := o.Process(ctx, doc)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed, nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed, nil
	}
	if err := os.WriteFile(outPath, []byte(result.Output), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed, nil
	}

	fmt.Fprintf(w, "processed: %s -> %s\n", base, outPath)
	return StatusDone, result
}

// ProcessBatch runs every input path through the orchestrator, printing
// per-file status to w and returning a summary. onDone, when non-nil, is
// called with the input path and result of each successfully processed
// file.
func ProcessBatch(ctx context.Context, o *Orchestrator, paths []string, outDir string, w io.Writer, onDone func(path string, result *Result)) BatchResult {
	var result BatchResult
	for _, path := range paths {
		status, r := ProcessFile(ctx, o, path, outDir, w)
		switch status {
		case StatusDone:
			result.Processed++
			if onDone != nil {
				onDone(path, r)
			}
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d processed, %d skipped, %d failed (total: %d)\n",
		result.Processed, result.Skipped, result.Failed, result.Total())
	return result
}
