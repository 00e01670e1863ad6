// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OutputFormat selects the rendered output format. Only markdown carries a
// byte-determinism guarantee; txt and html are projections of it.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputText     OutputFormat = "txt"
	OutputHTML     OutputFormat = "html"
)

// SpellerConfig holds settings for the dictionary oracle backing the
// spell-correction stage.
type SpellerConfig struct {
	// ServiceURL is the base URL of a remote dictionary service. Empty
	// means the built-in fallback oracle is used.
	ServiceURL string `json:"service_url,omitempty" yaml:"service_url,omitempty"`

	// Timeout is the per-request timeout for remote lookups.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the retry budget for throttled or failing lookups.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig is the complete configuration surface of the pipeline.
// No other options are recognized.
type PipelineConfig struct {
	// OCRLanguage is an informational passthrough; it does not affect
	// the pipeline stages.
	OCRLanguage string `json:"ocr_language" yaml:"ocr_language"`

	// ConfidenceThreshold flags pages below it as low-confidence.
	// Pages are flagged, not dropped. Zero means DefaultLowConfidence.
	ConfidenceThreshold float64 `json:"confidence_threshold" yaml:"confidence_threshold"`

	// PreserveLayout is a reserved toggle consumed by rendering
	// decisions around line-break preservation.
	PreserveLayout bool `json:"preserve_layout" yaml:"preserve_layout"`

	// EnableSpellCheck gates the spell-correction stage.
	EnableSpellCheck bool `json:"enable_spell_check" yaml:"enable_spell_check"`

	// AggressiveCorrection makes the spell corrector accept the top
	// suggestion unconditionally instead of applying the edit-distance
	// acceptance bound.
	AggressiveCorrection bool `json:"aggressive_correction" yaml:"aggressive_correction"`

	// CustomDictionary lists allow-listed terms, case-folded into a set
	// once per run and never mutated mid-run.
	CustomDictionary []string `json:"custom_dictionary,omitempty" yaml:"custom_dictionary,omitempty"`

	// OutputFormat selects markdown, txt, or html output.
	OutputFormat OutputFormat `json:"output_format" yaml:"output_format"`

	// IncludeMetadata emits the fenced key/value metadata header.
	IncludeMetadata bool `json:"include_metadata" yaml:"include_metadata"`

	// PreserveFormatting keeps recognized inline emphasis untouched.
	PreserveFormatting bool `json:"preserve_formatting" yaml:"preserve_formatting"`

	// IncludeTableOfContents emits the table-of-contents section.
	IncludeTableOfContents bool `json:"include_table_of_contents" yaml:"include_table_of_contents"`

	// Speller configures the dictionary oracle.
	Speller SpellerConfig `json:"speller" yaml:"speller"`
}

// Threshold returns the configured confidence threshold, defaulting to
// DefaultLowConfidence when unset.
func (c PipelineConfig) Threshold() float64 {
	if c.ConfidenceThreshold <= 0 {
		return DefaultLowConfidence
	}
	return c.ConfidenceThreshold
}

// HistoryConfig holds settings for the processing-run history store.
type HistoryConfig struct {
	// HistoryDir is the directory holding the history database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of search results.
	MaxResults int `json:"max_results" yaml:"max_results"`
}
