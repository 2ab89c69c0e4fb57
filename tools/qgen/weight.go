package main

import (
	"math"
	"regexp"
)

var (
	digitClass  = regexp.MustCompile(`[0-9]`)
	symbolClass = regexp.MustCompile(`[^a-z0-9\s]`)
)

// computeWeight derives a selection weight from the typing difficulty of the
// answer. Length is the base signal; digits and non-alphanumeric characters
// each add a bonus (both can apply to the same answer). The result is always
// in [0.5, 3.0], rounded to one decimal, so even a degenerate answer stays
// selectable.
func computeWeight(q Question) float64 {
	normalized := normalize(q.Answer)
	weight := float64(len([]rune(normalized)))

	if digitClass.MatchString(normalized) {
		weight += 0.5
	}
	if symbolClass.MatchString(normalized) {
		weight += 0.5
	}
	if weight == 0 {
		weight = 0.5
	}

	clipped := math.Min(3.0, math.Max(0.5, weight/5))
	return math.Round(clipped*10) / 10
}
