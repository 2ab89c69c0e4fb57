package main

import "strings"

// normalize canonicalizes text for duplicate checks and weighting: trims,
// collapses internal whitespace runs to a single space, lowercases, and maps
// full-width Latin letters and digits to their half-width ASCII forms.
// Idempotent; never shown to players.
func normalize(s string) string {
	lowered := strings.ToLower(strings.Join(strings.Fields(s), " "))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 0xFF10 && r <= 0xFF19) || // ０-９
			(r >= 0xFF21 && r <= 0xFF3A) || // Ａ-Ｚ
			(r >= 0xFF41 && r <= 0xFF5A) { // ａ-ｚ
			r -= 0xFEE0
		}
		b.WriteRune(r)
	}
	return b.String()
}
