// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordlist loads custom dictionary terms from plain-text files.
// Each file holds one term per line; blank lines and # comments are
// ignored. Terms are case-folded when loaded.
package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParseTerms splits a newline-delimited term string, dropping blank
// lines and # comments. Terms are lowercased.
func ParseTerms(s string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		term := strings.ToLower(line)
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

// Load reads every regular file in dir and merges their terms into one
// sorted, deduplicated list. A missing directory is not an error; Load
// returns an empty list. Unreadable files produce a warning on stderr
// but do not abort.
func Load(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading wordlist directory %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var terms []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read wordlist %s: %v\n", entry.Name(), err)
			continue
		}

		for _, term := range ParseTerms(string(data)) {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}

	sort.Strings(terms)
	return terms, nil
}
