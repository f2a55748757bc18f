package eshop

import (
	"strings"
	"unicode"
)

// bestMatch picks the candidate whose normalized title is closest to the
// query by edit distance. Strict less-than keeps the earliest candidate on
// ties, so page and offset order decide between equally good matches. The
// winner is chosen over all candidates first; if it carries no nsuid the
// resolution is a miss.
func bestMatch(query string, candidates []searchDoc) string {
	if len(candidates) == 0 {
		return ""
	}

	normalizedQuery := normalizeTitle(query)

	best := candidates[0]
	bestDistance := levenshtein(normalizedQuery, normalizeTitle(best.Title))
	for _, candidate := range candidates[1:] {
		distance := levenshtein(normalizedQuery, normalizeTitle(candidate.Title))
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best.nsuid()
}

// normalizeTitle lowercases and strips all whitespace so punctuation-level
// differences in store listings don't dominate the distance.
func normalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// levenshtein computes edit distance with the two-row method. Candidate sets
// are capped at searchPages*searchPageSize entries so the quadratic cost per
// pair never matters here.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	previous := make([]int, len(s2)+1)
	current := make([]int, len(s2)+1)

	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(s1); i++ {
		current[0] = i
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				current[j] = previous[j-1]
			} else {
				minVal := previous[j]
				if current[j-1] < minVal {
					minVal = current[j-1]
				}
				if previous[j-1] < minVal {
					minVal = previous[j-1]
				}
				current[j] = 1 + minVal
			}
		}
		previous, current = current, previous
	}

	return previous[len(s2)]
}
