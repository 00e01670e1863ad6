// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package correct

import "github.com/pdiddy/reflow-engine/pkg/types"

// DefaultRules returns the built-in ordered rule table. The slice is
// rebuilt on every call so callers can append without aliasing.
func DefaultRules() []types.CorrectionRule {
	return []types.CorrectionRule{
		// Character scope: ligatures the recognizer emits as single glyphs.
		{Pattern: "ﬁ", Replacement: "fi", Scope: types.ScopeCharacter},
		{Pattern: "ﬂ", Replacement: "fl", Scope: types.ScopeCharacter},
		{Pattern: "ﬀ", Replacement: "ff", Scope: types.ScopeCharacter},
		{Pattern: "ﬃ", Replacement: "ffi", Scope: types.ScopeCharacter},
		{Pattern: "ﬄ", Replacement: "ffl", Scope: types.ScopeCharacter},

		// Character scope: glyph look-alike confusions.
		{Pattern: "rn", Replacement: "m", Scope: types.ScopeCharacter},
		{Pattern: "cl", Replacement: "d", Scope: types.ScopeCharacter},
		{Pattern: "vv", Replacement: "w", Scope: types.ScopeCharacter},
		{Pattern: "VV", Replacement: "W", Scope: types.ScopeCharacter},
		{Pattern: "|", Replacement: "I", Scope: types.ScopeCharacter},

		// Word scope: recognition artifacts seen as whole words.
		{Pattern: "tlie", Replacement: "the", Scope: types.ScopeWord},
		{Pattern: "tiie", Replacement: "the", Scope: types.ScopeWord},
		{Pattern: "tbe", Replacement: "the", Scope: types.ScopeWord},
		{Pattern: "Ihe", Replacement: "the", Scope: types.ScopeWord},
		{Pattern: "arid", Replacement: "and", Scope: types.ScopeWord},
		{Pattern: "aud", Replacement: "and", Scope: types.ScopeWord},
		{Pattern: "witb", Replacement: "with", Scope: types.ScopeWord},
		{Pattern: "wbich", Replacement: "which", Scope: types.ScopeWord},
		{Pattern: "tbat", Replacement: "that", Scope: types.ScopeWord},
		{Pattern: "bave", Replacement: "have", Scope: types.ScopeWord},
		{Pattern: "sbe", Replacement: "she", Scope: types.ScopeWord},
		{Pattern: "liave", Replacement: "have", Scope: types.ScopeWord},

		// Punctuation scope: collapse doubles, strip space before marks.
		// One rule per mark; RE2 has no backreferences.
		{Pattern: `\.{2,}`, Replacement: ".", Scope: types.ScopePunctuation},
		{Pattern: `,{2,}`, Replacement: ",", Scope: types.ScopePunctuation},
		{Pattern: `;{2,}`, Replacement: ";", Scope: types.ScopePunctuation},
		{Pattern: `:{2,}`, Replacement: ":", Scope: types.ScopePunctuation},
		{Pattern: `!{2,}`, Replacement: "!", Scope: types.ScopePunctuation},
		{Pattern: `\?{2,}`, Replacement: "?", Scope: types.ScopePunctuation},
		{Pattern: `[ \t]+([.,;:!?])`, Replacement: "$1", Scope: types.ScopePunctuation},
	}
}
