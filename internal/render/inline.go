// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	allCapsRe = regexp.MustCompile(`^[A-Z]{2,}$`)
	urlRe     = regexp.MustCompile(`https?://[^\s<>()\[\]]+`)
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	codeChars = "{}();=<>"
)

// codeKeywords are first tokens that mark a line as code.
var codeKeywords = map[string]bool{
	"func": true, "var": true, "const": true, "return": true,
	"import": true, "package": true, "class": true, "def": true,
	"function": true, "let": true, "public": true, "private": true,
	"static": true, "void": true,
}

// isCodeLike reports whether a line should live inside a code fence:
// code punctuation, a leading keyword, or deep indentation with content.
func isCodeLike(line string) bool {
	if strings.ContainsAny(line, codeChars) {
		return true
	}
	if fields := strings.Fields(line); len(fields) > 0 && codeKeywords[fields[0]] {
		return true
	}
	if strings.HasPrefix(line, "    ") {
		for _, r := range line {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return true
			}
		}
	}
	return false
}

// inlinePass applies token-level markup to a prose line: bold for
// all-caps acronyms, markdown links for bare URLs and email addresses.
func inlinePass(line string) string {
	tokens := strings.Fields(line)
	for i, token := range tokens {
		tokens[i] = boldToken(token)
	}
	line = strings.Join(tokens, " ")

	line = urlRe.ReplaceAllString(line, "[$0]($0)")
	line = emailRe.ReplaceAllStringFunc(line, func(m string) string {
		return "[" + m + "](mailto:" + m + ")"
	})
	return line
}

// boldToken wraps an all-caps token of two-plus letters in bold markers.
// A token followed directly by terminal punctuation is treated as a
// shouted sentence ending, not an acronym, and left alone.
func boldToken(token string) string {
	runes := []rune(token)
	end := len(runes)
	for end > 0 {
		r := runes[end-1]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		end--
	}
	core := string(runes[:end])
	suffix := string(runes[end:])

	if !allCapsRe.MatchString(core) {
		return token
	}
	if suffix != "" && strings.ContainsAny(suffix[:1], ".!?") {
		return token
	}
	return "**" + core + "**" + suffix
}
