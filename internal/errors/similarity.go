package errors

import (
	"fmt"
	"strings"
)

// editDistance is the optimal-string-alignment distance between a and b:
// insertions, deletions, substitutions and swaps of adjacent runes each
// count as one edit, so "buttno" is one edit from "button".
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two previous rows are needed to see transpositions.
	prevprev := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				best = min(best, prevprev[j-2]+1)
			}
			curr[j] = best
		}
		prevprev, prev, curr = prev, curr, prevprev
	}
	return prev[len(b)]
}

// Similarity returns a case-insensitive score between 0.0 (nothing in
// common) and 1.0 (identical).
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(ra, rb))/float64(longest)
}

// FindClosest returns the candidate most similar to target, or "" when none
// reaches threshold. Earlier candidates win ties.
func FindClosest(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := Similarity(target, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}

// DidYouMean formats a suggestion for the closest candidate, or returns ""
// when nothing is close enough.
func DidYouMean(target string, candidates []string, threshold float64) string {
	if c := FindClosest(target, candidates, threshold); c != "" {
		return fmt.Sprintf("Did you mean %q?", c)
	}
	return ""
}
