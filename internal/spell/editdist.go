// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spell

// EditDistance returns the optimal string alignment distance between
// two strings. Adjacent transpositions count as a single edit, which
// matters for OCR output where swapped letter pairs are common.
func EditDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	aRunes := []rune(a)
	bRunes := []rune(b)

	prev2 := make([]int, len(bRunes)+1)
	prev := make([]int, len(bRunes)+1)
	curr := make([]int, len(bRunes)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(aRunes); i++ {
		curr[0] = i
		for j := 1; j <= len(bRunes); j++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			curr[j] = min(min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
			if i > 1 && j > 1 && aRunes[i-1] == bRunes[j-2] && aRunes[i-2] == bRunes[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(bRunes)]
}
