// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RuleScope determines how a correction rule's pattern is matched.
type RuleScope string

const (
	// ScopeCharacter rules are literal, global substring replacements.
	// They may match inside otherwise-correct words; that imprecision is
	// an accepted tradeoff of the blunt first pass.
	ScopeCharacter RuleScope = "character"

	// ScopeWord rules match whole words, case-insensitively.
	ScopeWord RuleScope = "word"

	// ScopePunctuation rules are regular expressions over punctuation
	// sequences (doubled punctuation, stray spacing).
	ScopePunctuation RuleScope = "punctuation"
)

// CorrectionRule is one pattern-to-replacement substitution. Rules live
// in an ordered table; application order is part of the contract, and
// reordering changes output.
type CorrectionRule struct {
	Pattern     string    `json:"pattern" yaml:"pattern"`
	Replacement string    `json:"replacement" yaml:"replacement"`
	Scope       RuleScope `json:"scope" yaml:"scope"`
}
