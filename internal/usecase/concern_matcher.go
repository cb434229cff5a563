package usecase

import "strings"

// MatchesConcern reports whether a free-text concern label matches any of the
// user's concerns. A match is either direct case-insensitive equality with a
// user concern, or verbatim membership in that concern's synonym set.
// Substring matching is intentionally not used here: the variant list is a
// closed vocabulary.
func MatchesConcern(candidate string, userConcerns []string) bool {
	if candidate == "" || len(userConcerns) == 0 {
		return false
	}

	candidateLower := strings.ToLower(candidate)
	for _, concern := range userConcerns {
		if candidateLower == strings.ToLower(concern) {
			return true
		}
		for _, variant := range SynonymsFor(concern) {
			if candidateLower == variant {
				return true
			}
		}
	}
	return false
}

// ProductMatchesUserConcerns reports whether ANY product concern matches ANY
// user concern. Short-circuits on the first hit.
func ProductMatchesUserConcerns(productConcerns, userConcerns []string) bool {
	for _, pc := range productConcerns {
		if MatchesConcern(pc, userConcerns) {
			return true
		}
	}
	return false
}

// MatchesIngredient reports whether an ingredient is considered beneficial
// for any of the user's concerns. The concern→ingredient table is keyed on
// the raw concern string (no synonym resolution first), and the comparison is
// bidirectional substring containment: "Niacinamide 10%" matches the fragment
// "niacinamide", and a fragment like "hyaluronic acid" matches the shorter
// label "hyaluronic".
func MatchesIngredient(ingredientName string, userConcerns []string) bool {
	if ingredientName == "" || len(userConcerns) == 0 {
		return false
	}

	nameLower := strings.ToLower(ingredientName)
	for _, concern := range userConcerns {
		for _, fragment := range IngredientsFor(concern) {
			if strings.Contains(nameLower, fragment) || strings.Contains(fragment, nameLower) {
				return true
			}
		}
	}
	return false
}
