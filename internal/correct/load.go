// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package correct

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

// ruleFile is the on-disk shape of a custom rule table.
type ruleFile struct {
	Rules []types.CorrectionRule `yaml:"rules"`
}

// LoadRules reads a YAML rule table:
//
//	rules:
//	  - pattern: "tlie"
//	    replacement: "the"
//	    scope: word
//
// File order is preserved. A loaded table replaces the built-in one
// entirely; include the default rules in the file to keep them.
func LoadRules(path string) ([]types.CorrectionRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table %s: %w", path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rule table %s: %w", path, err)
	}

	for i, r := range f.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule table %s: rule %d has an empty pattern", path, i)
		}
		switch r.Scope {
		case types.ScopeCharacter, types.ScopeWord, types.ScopePunctuation:
		default:
			return nil, fmt.Errorf("rule table %s: rule %d has unknown scope %q", path, i, r.Scope)
		}
	}

	return f.Rules, nil
}
