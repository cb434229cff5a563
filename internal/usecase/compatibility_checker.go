package usecase

import (
	"fmt"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// Ingredient classes used by the conflict table. Free-text ingredient names
// are bucketed into classes by substring detection so "Retinol 0.5%",
// "encapsulated retinal" and "tretinoin" all land in the retinoid class.
const (
	classRetinoid       = "retinoid"
	classAHA            = "aha"
	classBHA            = "bha"
	classBenzoyl        = "benzoyl peroxide"
	classVitaminC       = "vitamin c"
	classNiacinamide    = "niacinamide"
	classCopperPeptides = "copper peptides"
)

// classFragments maps each ingredient class to the name fragments that
// identify it. Detection is case-insensitive substring containment.
var classFragments = map[string][]string{
	classRetinoid:       {"retinol", "retinal", "retinoid", "tretinoin", "adapalene", "retin-a"},
	classAHA:            {"glycolic", "lactic acid", "mandelic", "aha", "alpha hydroxy"},
	classBHA:            {"salicylic", "bha", "beta hydroxy", "betaine salicylate"},
	classBenzoyl:        {"benzoyl peroxide"},
	classVitaminC:       {"vitamin c", "ascorbic", "ascorbyl", "ethyl ascorbic"},
	classNiacinamide:    {"niacinamide", "nicotinamide"},
	classCopperPeptides: {"copper peptide", "copper tripeptide", "ghk-cu"},
}

// conflictRule describes one known interaction between two ingredient classes.
type conflictRule struct {
	level      domain.CompatLevel
	reason     string
	resolution string
}

// conflictTable holds the known hard and soft conflicts, keyed by the sorted
// class pair. Any pair not listed is safe. The table is deliberately not
// exhaustive; absence means "no known conflict", never an error.
var conflictTable = map[[2]string]conflictRule{
	pairKey(classRetinoid, classAHA): {
		level:  domain.CompatAvoid,
		reason: "Retinoids and AHAs both increase cell turnover; layering them can severely irritate and compromise the skin barrier",
	},
	pairKey(classRetinoid, classBHA): {
		level:  domain.CompatAvoid,
		reason: "Retinoids and BHAs together over-exfoliate and can cause peeling, redness and barrier damage",
	},
	pairKey(classRetinoid, classBenzoyl): {
		level:  domain.CompatAvoid,
		reason: "Benzoyl peroxide oxidizes retinoids, deactivating both and irritating the skin",
	},
	pairKey(classVitaminC, classBenzoyl): {
		level:  domain.CompatAvoid,
		reason: "Benzoyl peroxide oxidizes vitamin C, rendering it ineffective",
	},
	pairKey(classVitaminC, classNiacinamide): {
		level:      domain.CompatCaution,
		reason:     "Vitamin C and niacinamide can reduce each other's effectiveness at high concentrations",
		resolution: "Use vitamin C in the morning and niacinamide at night, or wait 15 minutes between layers",
	},
	pairKey(classAHA, classBHA): {
		level:      domain.CompatCaution,
		reason:     "Combining AHA and BHA exfoliants can over-exfoliate sensitive skin",
		resolution: "Alternate days, or limit combined use to once or twice a week",
	},
	pairKey(classRetinoid, classVitaminC): {
		level:      domain.CompatCaution,
		reason:     "Retinoids and vitamin C have conflicting pH requirements and can irritate when layered",
		resolution: "Use vitamin C in the morning and the retinoid at night",
	},
	pairKey(classVitaminC, classCopperPeptides): {
		level:      domain.CompatCaution,
		reason:     "Copper peptides can destabilize vitamin C when applied together",
		resolution: "Separate into AM and PM routines",
	},
	pairKey(classAHA, classCopperPeptides): {
		level:      domain.CompatCaution,
		reason:     "Low-pH acids can break down copper peptides",
		resolution: "Apply acids at night and copper peptides in the morning",
	},
	pairKey(classBHA, classCopperPeptides): {
		level:      domain.CompatCaution,
		reason:     "Low-pH acids can break down copper peptides",
		resolution: "Apply acids at night and copper peptides in the morning",
	},
}

// pairKey builds an order-independent table key, which is what makes the
// lookup symmetric.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// classOrder fixes the detection order so repeated calls always report the
// same classes (and therefore the same reason) for the same input.
var classOrder = []string{
	classRetinoid, classAHA, classBHA, classBenzoyl,
	classVitaminC, classNiacinamide, classCopperPeptides,
}

// classesOf returns every ingredient class the name falls into. Most names
// hit zero or one class; combination actives ("retinol + glycolic complex")
// may hit several.
func classesOf(ingredientName string) []string {
	nameLower := strings.ToLower(ingredientName)

	var classes []string
	for _, class := range classOrder {
		for _, fragment := range classFragments[class] {
			if strings.Contains(nameLower, fragment) {
				classes = append(classes, class)
				break
			}
		}
	}
	return classes
}

// CheckCompatibility classifies the interaction between two ingredient names.
// The check is symmetric: (a, b) and (b, a) always yield the same level.
// Pairs with no table entry are safe with a generic reason; the conflict
// table is not treated as exhaustive.
func CheckCompatibility(ingredientA, ingredientB string) domain.CompatibilityResult {
	classesA := classesOf(ingredientA)
	classesB := classesOf(ingredientB)

	// Report the worst interaction across all class combinations: avoid
	// outranks caution outranks safe.
	var worst *conflictRule
	for _, ca := range classesA {
		for _, cb := range classesB {
			if ca == cb {
				// Same class on both sides (e.g. two retinoids) is not a
				// conflict the table tracks.
				continue
			}
			rule, ok := conflictTable[pairKey(ca, cb)]
			if !ok {
				continue
			}
			if worst == nil || (rule.level == domain.CompatAvoid && worst.level == domain.CompatCaution) {
				r := rule
				worst = &r
			}
		}
	}

	if worst != nil {
		return domain.CompatibilityResult{
			Level:      worst.level,
			Reason:     worst.reason,
			Resolution: worst.resolution,
		}
	}

	return domain.CompatibilityResult{
		Level:  domain.CompatSafe,
		Reason: fmt.Sprintf("No known conflicts between %s and %s", ingredientA, ingredientB),
	}
}

// isGenericSafeReason reports whether a safe reason is the no-conflict filler
// rather than a meaningful statement about the pair.
func isGenericSafeReason(reason string) bool {
	return strings.HasPrefix(reason, "No known conflicts")
}
