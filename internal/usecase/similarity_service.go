package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// Similarity scoring weights. Points are additive and never normalized; a
// product collecting zero points is dropped from the result entirely.
const (
	sameCategoryPoints      = 20
	sharedConcernPoints     = 10 // per concern shared with the reference
	userConcernMatchPoints  = 12 // per concern matching the user's concerns
	skinTypeMatchPoints     = 15
	sharedIngredientPoints  = 8 // per key ingredient shared with the reference
	beneficialIngredPoints  = 6 // per key ingredient addressing a user concern
	sharedPreferencePoints  = 6 // per preference flag shared with the user
	topRatedBonus           = 10
	wellRatedBonus          = 5
	topRatedThreshold       = 4.8
	wellRatedThreshold      = 4.5
	defaultSimilarityLimit  = 4
)

// SimilarityConfig holds configuration for the similarity scorer
type SimilarityConfig struct {
	Limit              int
	EnableDebugLogging bool
}

// SimilarityScorer ranks catalog products by how well they match a reference
// product and the current user's profile.
type SimilarityScorer struct {
	limit              int
	enableDebugLogging bool
}

// NewSimilarityScorer creates a new similarity scorer with the given configuration
func NewSimilarityScorer(config SimilarityConfig) *SimilarityScorer {
	limit := config.Limit
	if limit <= 0 {
		limit = defaultSimilarityLimit
	}
	return &SimilarityScorer{
		limit:              limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ScoreSimilarProducts scores every catalog product (except the reference)
// against the reference and the user's profile, drops zero scorers, and
// returns the top results in descending score order. Ties keep catalog
// encounter order.
func (s *SimilarityScorer) ScoreSimilarProducts(
	catalog []domain.Product,
	reference domain.Product,
	user domain.UserProfile,
) []domain.ScoredProduct {
	scored := make([]domain.ScoredProduct, 0, len(catalog))

	for _, candidate := range catalog {
		if candidate.ID == reference.ID {
			continue
		}

		score, reasons := s.scoreCandidate(candidate, reference, user)
		if score == 0 {
			continue
		}

		if s.enableDebugLogging {
			log.Printf("[SCORE] %q scored %d against %q: %v", candidate.Name, score, reference.Name, reasons)
		}

		scored = append(scored, domain.ScoredProduct{
			Product:      candidate,
			Score:        score,
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.limit {
		scored = scored[:s.limit]
	}
	return scored
}

// scoreCandidate accumulates the weighted signals for one candidate. The
// reasons list is a best-effort explanation, not a full audit trail: only the
// category, shared-concern, user-concern and rating signals carry a reason.
func (s *SimilarityScorer) scoreCandidate(
	candidate, reference domain.Product,
	user domain.UserProfile,
) (int, []string) {
	score := 0
	var reasons []string

	// Same category as the reference.
	if candidate.Category != "" && strings.EqualFold(candidate.Category, reference.Category) {
		score += sameCategoryPoints
		reasons = append(reasons, fmt.Sprintf("Same category: %s", strings.ToLower(candidate.Category)))
	}

	// Concerns shared with the reference (exact, case-insensitive).
	for _, concern := range candidate.Concerns {
		if containsFold(reference.Concerns, concern) {
			score += sharedConcernPoints
			reasons = append(reasons, fmt.Sprintf("Also targets %s", strings.ToLower(concern)))
		}
	}

	// Candidate concerns matching the user's stated concerns.
	userConcernHits := 0
	for _, concern := range candidate.Concerns {
		if MatchesConcern(concern, user.Concerns) {
			userConcernHits++
		}
	}
	if userConcernHits > 0 {
		score += userConcernHits * userConcernMatchPoints
		reasons = append(reasons, "Matches your concerns")
	}

	// Skin type overlap with the user ("all" counts as a match).
	if skinTypeMatches(candidate.SkinTypes, user.SkinType) {
		score += skinTypeMatchPoints
	}

	// Key ingredients shared with the reference.
	for _, ingredient := range candidate.KeyIngredients {
		if containsFold(reference.KeyIngredients, ingredient) {
			score += sharedIngredientPoints
		}
	}

	// Key ingredients addressing a user concern.
	for _, ingredient := range candidate.KeyIngredients {
		if MatchesIngredient(ingredient, user.Concerns) {
			score += beneficialIngredPoints
		}
	}

	// Preference flags shared with the user's active preferences.
	for pref, active := range user.Preferences {
		if active && candidate.Preferences[pref] {
			score += sharedPreferencePoints
		}
	}

	// Rating bonus, mutually exclusive and checked top-down.
	if candidate.Rating >= topRatedThreshold {
		score += topRatedBonus
		reasons = append(reasons, "Highly rated (4.8+)")
	} else if candidate.Rating >= wellRatedThreshold {
		score += wellRatedBonus
		reasons = append(reasons, "Well rated (4.5+)")
	}

	return score, reasons
}

// containsFold reports whether list contains value under case-insensitive
// comparison.
func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// skinTypeMatches reports whether a product's skin-type list covers the
// user's skin type. An entry of "all" covers everyone; an empty user skin
// type is no signal.
func skinTypeMatches(productSkinTypes []string, userSkinType string) bool {
	if userSkinType == "" {
		return false
	}
	for _, st := range productSkinTypes {
		if strings.EqualFold(st, userSkinType) || strings.EqualFold(st, "all") {
			return true
		}
	}
	return false
}
