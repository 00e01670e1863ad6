// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package correct applies ordered substitution tables to raw recognized
// text. Three passes run in a fixed order: character-scope literal
// replacements, word-scope case-insensitive whole-word replacements, and
// punctuation-scope regex cleanups. The pass order and the rule order
// within each pass are part of the output contract.
package correct

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// compiledRule pairs a rule with its compiled matcher. Character-scope
// rules keep re nil and use plain substring replacement.
type compiledRule struct {
	rule types.CorrectionRule
	re   *regexp.Regexp
}

// Engine applies a fixed, ordered rule table. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	character   []compiledRule
	word        []compiledRule
	punctuation []compiledRule
}

// NewEngine compiles a rule table into an Engine. Table order is preserved
// within each scope. A rule with an unknown scope or an invalid pattern is
// rejected so a bad table fails at construction, not mid-document.
func NewEngine(rules []types.CorrectionRule) (*Engine, error) {
	e := &Engine{}
	for i, r := range rules {
		switch r.Scope {
		case types.ScopeCharacter:
			e.character = append(e.character, compiledRule{rule: r})
		case types.ScopeWord:
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(r.Pattern) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("compiling word rule %d (%q): %w", i, r.Pattern, err)
			}
			e.word = append(e.word, compiledRule{rule: r, re: re})
		case types.ScopePunctuation:
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("compiling punctuation rule %d (%q): %w", i, r.Pattern, err)
			}
			e.punctuation = append(e.punctuation, compiledRule{rule: r, re: re})
		default:
			return nil, fmt.Errorf("rule %d: unknown scope %q", i, r.Scope)
		}
	}
	return e, nil
}

// MustEngine compiles the built-in default table. The defaults are static,
// so a compile failure is a programming error.
func MustEngine() *Engine {
	e, err := NewEngine(DefaultRules())
	if err != nil {
		panic(err)
	}
	return e
}

// Apply runs the three passes over text and returns the corrected string.
// It is pure: no state is carried between calls, and an empty rule table
// is a no-op.
func (e *Engine) Apply(text string) string {
	if text == "" {
		return text
	}

	// Pass 1: blunt global character substitutions. These are not word
	// bounded and can touch legitimate substrings; that precision loss is
	// accepted in exchange for catching recognizer artifacts everywhere.
	for _, cr := range e.character {
		text = strings.ReplaceAll(text, cr.rule.Pattern, cr.rule.Replacement)
	}

	// Pass 2: known whole-word recognition artifacts, case-insensitive.
	for _, cr := range e.word {
		text = cr.re.ReplaceAllString(text, cr.rule.Replacement)
	}

	// Pass 3: punctuation cleanup.
	for _, cr := range e.punctuation {
		text = cr.re.ReplaceAllString(text, cr.rule.Replacement)
	}

	return text
}

// Rules returns the engine's rules in application order, pass by pass.
func (e *Engine) Rules() []types.CorrectionRule {
	out := make([]types.CorrectionRule, 0, len(e.character)+len(e.word)+len(e.punctuation))
	for _, set := range [][]compiledRule{e.character, e.word, e.punctuation} {
		for _, cr := range set {
			out = append(out, cr.rule)
		}
	}
	return out
}
