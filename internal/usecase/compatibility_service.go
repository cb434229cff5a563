package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

const (
	defaultCompatibleLimit = 8
	userBoostPerConcern    = 10
	userBoostSkinType      = 10
	maxReasonsPerCandidate = 2
)

// PairingConfig holds configuration for the compatibility search
type PairingConfig struct {
	Limit              int
	EnableDebugLogging bool
}

// PairingService finds catalog products that can be used alongside a
// reference product, judged by a full ingredient-pair cross check.
type PairingService struct {
	limit              int
	enableDebugLogging bool
}

// NewPairingService creates a new compatibility search service
func NewPairingService(config PairingConfig) *PairingService {
	limit := config.Limit
	if limit <= 0 {
		limit = defaultCompatibleLimit
	}
	return &PairingService{
		limit:              limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindCompatibleProducts searches the catalog for complementary products that
// pair safely with the reference. Candidates sharing the reference's category
// are excluded (the search is for products to use *with* the reference, not
// instead of it), as are candidates with no key ingredients. Any ingredient
// pair classified avoid disqualifies the candidate outright.
func (s *PairingService) FindCompatibleProducts(
	catalog []domain.Product,
	reference domain.Product,
	user domain.UserProfile,
) []domain.CompatibleProduct {
	if len(reference.KeyIngredients) == 0 {
		return nil
	}

	results := make([]domain.CompatibleProduct, 0, len(catalog))

	for _, candidate := range catalog {
		if candidate.ID == reference.ID {
			continue
		}
		if strings.EqualFold(candidate.Category, reference.Category) {
			continue
		}
		if len(candidate.KeyIngredients) == 0 {
			continue
		}

		entry, ok := s.evaluateCandidate(reference, candidate)
		if !ok {
			continue
		}

		entry.UserBoost = userBoost(candidate, user)
		results = append(results, entry)
	}

	// Level first: fully-compatible always outranks use-with-care, no matter
	// the numeric scores. Within a level, higher compatScore+userBoost wins.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Level != results[j].Level {
			return results[i].Level == domain.PairingFullyCompatible
		}
		return results[i].CompatScore+float64(results[i].UserBoost) >
			results[j].CompatScore+float64(results[j].UserBoost)
	})

	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results
}

// evaluateCandidate crosses every reference ingredient against every
// candidate ingredient (identical pairs skipped) and tallies the interaction
// levels. Returns ok=false when any pair is classified avoid.
func (s *PairingService) evaluateCandidate(
	reference, candidate domain.Product,
) (domain.CompatibleProduct, bool) {
	var safeCount, cautionCount int
	var reasons, cautions []string

	for _, refIngredient := range reference.KeyIngredients {
		for _, candIngredient := range candidate.KeyIngredients {
			if strings.EqualFold(refIngredient, candIngredient) {
				continue
			}

			result := CheckCompatibility(refIngredient, candIngredient)
			switch result.Level {
			case domain.CompatAvoid:
				if s.enableDebugLogging {
					log.Printf("[PAIRING] %q excluded: %s + %s -> avoid (%s)",
						candidate.Name, refIngredient, candIngredient, result.Reason)
				}
				return domain.CompatibleProduct{}, false
			case domain.CompatCaution:
				cautionCount++
				caution := result.Reason
				if result.Resolution != "" {
					caution = fmt.Sprintf("%s. %s", result.Reason, result.Resolution)
				}
				cautions = append(cautions, caution)
			default:
				safeCount++
				if !isGenericSafeReason(result.Reason) {
					reasons = append(reasons, result.Reason)
				}
			}
		}
	}

	level := domain.PairingFullyCompatible
	if cautionCount > 0 {
		level = domain.PairingUseWithCare
	}

	// Avoid-containing candidates never reach this ratio, so the denominator
	// only ever counts safe and caution pairs.
	compatScore := 100.0
	if safeCount+cautionCount > 0 {
		compatScore = float64(safeCount) / float64(safeCount+cautionCount) * 100
	}

	reasons = dedupCap(reasons, maxReasonsPerCandidate)
	cautions = dedupCap(cautions, maxReasonsPerCandidate)
	if len(reasons) == 0 {
		reasons = append(reasons, genericPairingReason(reference, candidate))
	}

	return domain.CompatibleProduct{
		Product:     candidate,
		Level:       level,
		CompatScore: compatScore,
		Reasons:     reasons,
		Cautions:    cautions,
	}, true
}

// userBoost adds profile-fit points on top of the compatibility ratio.
func userBoost(candidate domain.Product, user domain.UserProfile) int {
	boost := 0
	for _, concern := range candidate.Concerns {
		if MatchesConcern(concern, user.Concerns) {
			boost += userBoostPerConcern
		}
	}
	if skinTypeMatches(candidate.SkinTypes, user.SkinType) {
		boost += userBoostSkinType
	}
	return boost
}

// genericPairingReason names the first couple of key ingredients on each side
// when no specific safe reason survived dedup.
func genericPairingReason(reference, candidate domain.Product) string {
	return fmt.Sprintf("%s works alongside %s with no known conflicts",
		firstIngredients(reference.KeyIngredients), firstIngredients(candidate.KeyIngredients))
}

func firstIngredients(ingredients []string) string {
	if len(ingredients) > 2 {
		ingredients = ingredients[:2]
	}
	return strings.Join(ingredients, " and ")
}

// dedupCap removes duplicates preserving order and truncates to max entries.
func dedupCap(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == max {
			break
		}
	}
	return out
}
