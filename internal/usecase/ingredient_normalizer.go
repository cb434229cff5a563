package usecase

import (
	"regexp"
	"strings"
)

// Compiled regex patterns for ingredient name normalization
var (
	// Matches concentration suffixes like "10%", "0.5 %", "2.5percent"
	concentrationPattern = regexp.MustCompile(`\b\d+\.?\d*\s*(%|percent)`)

	// Matches parenthesized qualifiers like "(encapsulated)", "(stabilized)"
	qualifierPattern = regexp.MustCompile(`\([^)]*\)`)

	// Multiple spaces cleanup
	ingredientSpacePattern = regexp.MustCompile(`\s+`)
)

// marketingPrefixes are label qualifiers that do not change the ingredient
// identity and would otherwise split equal ingredients into separate keys.
var marketingPrefixes = []string{
	"pure ", "advanced ", "clinical ", "medical grade ", "pharmaceutical grade ",
	"encapsulated ", "stabilized ", "time-released ",
}

// NormalizeIngredientName reduces a labeled ingredient ("Pure Niacinamide 10%
// (stabilized)") to its canonical lowercase identity ("niacinamide") so that
// the same active under different labels keys to one comparison row.
func NormalizeIngredientName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))

	normalized = concentrationPattern.ReplaceAllString(normalized, " ")
	normalized = qualifierPattern.ReplaceAllString(normalized, " ")

	for _, prefix := range marketingPrefixes {
		normalized = strings.TrimPrefix(normalized, prefix)
	}

	normalized = ingredientSpacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
