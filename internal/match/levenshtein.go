package match

import "strings"

// Levenshtein computes the edit distance between two strings, counting
// characters rather than bytes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// keep ra the shorter one, only two rows are stored
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Suggest returns the candidate closest to name, ignoring case. Candidates
// further than a third of the name's length (at least one edit) are not
// suggested. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	limit := max(1, len([]rune(name))/3)
	best, bestDist := "", limit+1

	for _, c := range candidates {
		d := Levenshtein(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
