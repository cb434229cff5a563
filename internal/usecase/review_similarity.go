package usecase

import (
	"fmt"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// Review similarity weights. Sub-scores are summed then clamped to 100.
const (
	skinTypeWeight    = 40
	concernWeight     = 15 // per matching concern
	complexionWeight  = 10
	sensitivityWeight = 10
	lifestyleWeight   = 5
	ageWeight         = 5

	maxSimilarityScore = 100
	ageProximityYears  = 5
)

// Match tier thresholds over the clamped 0-100 score.
const (
	tierFullThreshold    = 70
	tierStrongThreshold  = 50
	tierPartialThreshold = 30
	tierRelatedThreshold = 15
)

// complexionScale is the fixed 6-tier ordered complexion scale. Complexions
// within one position of each other are considered a match; unknown strings
// on either side disable the complexion signal entirely.
var complexionScale = []string{
	"Very Fair", "Fair", "Medium", "Olive", "Brown", "Dark Brown/Black",
}

// CalculateSimilarityWeight computes the 0-100 similarity between a
// reviewer's profile and the current user's, with one human-readable detail
// per triggered signal.
func CalculateSimilarityWeight(review domain.ReviewProfile, user domain.UserProfile) domain.SimilarityWeight {
	score := 0
	var details []string

	if review.SkinType != "" && strings.EqualFold(review.SkinType, user.SkinType) {
		score += skinTypeWeight
		details = append(details, "Same skin type")
	}

	concernMatches := 0
	for _, concern := range review.SkinConcerns {
		if MatchesConcern(concern, user.Concerns) {
			concernMatches++
		}
	}
	if concernMatches > 0 {
		score += concernMatches * concernWeight
		if concernMatches == 1 {
			details = append(details, "1 shared concern")
		} else {
			details = append(details, fmt.Sprintf("%d shared concerns", concernMatches))
		}
	}

	switch complexionDistance(review.Complexion, user.Complexion) {
	case 0:
		score += complexionWeight
		details = append(details, "Same complexion")
	case 1:
		score += complexionWeight
		details = append(details, "Similar complexion")
	}

	if review.Sensitivity != "" && user.Sensitivity != "" &&
		strings.EqualFold(review.Sensitivity, user.Sensitivity) {
		score += sensitivityWeight
		details = append(details, "Same sensitivity level")
	}

	if lifestyleOverlaps(review.Lifestyle, user.Lifestyle) {
		score += lifestyleWeight
		details = append(details, "Similar lifestyle")
	}

	if review.Age > 0 && user.Age > 0 && absInt(review.Age-user.Age) <= ageProximityYears {
		score += ageWeight
		details = append(details, "Similar age")
	}

	if score > maxSimilarityScore {
		score = maxSimilarityScore
	}

	return domain.SimilarityWeight{
		Score:        score,
		MatchTier:    tierForScore(score),
		MatchDetails: details,
	}
}

// tierForScore buckets a clamped similarity score into its discrete tier.
func tierForScore(score int) domain.MatchTier {
	switch {
	case score >= tierFullThreshold:
		return domain.TierFull
	case score >= tierStrongThreshold:
		return domain.TierStrong
	case score >= tierPartialThreshold:
		return domain.TierPartial
	case score >= tierRelatedThreshold:
		return domain.TierRelated
	default:
		return domain.TierNone
	}
}

// complexionDistance returns the position difference on the fixed complexion
// scale, or -1 when either side is unknown.
func complexionDistance(a, b string) int {
	posA := complexionPosition(a)
	posB := complexionPosition(b)
	if posA < 0 || posB < 0 {
		return -1
	}
	return absInt(posA - posB)
}

func complexionPosition(complexion string) int {
	for i, tier := range complexionScale {
		if strings.EqualFold(tier, complexion) {
			return i
		}
	}
	return -1
}

// lifestyleOverlaps reports whether the two tag lists share any entry. The
// signal is binary: one overlap scores the same as five.
func lifestyleOverlaps(a, b []string) bool {
	for _, tag := range a {
		if containsFold(b, tag) {
			return true
		}
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
