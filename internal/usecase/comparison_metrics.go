package usecase

import (
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// unitToML converts a declared size unit to milliliters (grams treated as
// milliliters for the price-per-unit comparison, the convention for
// water-density cosmetics).
var unitToML = map[string]float64{
	"ml":    1,
	"l":     1000,
	"oz":    29.5735,
	"fl oz": 29.5735,
	"g":     1,
	"kg":    1000,
}

// BuildComparisonMetrics computes the side-by-side metrics for a small
// comparison selection: price per milliliter, best/worst value, and
// per-ingredient highest-concentration flags. Products without a valid price
// or size are excluded from the best/worst pick, never treated as zero.
func BuildComparisonMetrics(products []domain.Product) domain.ComparisonMetrics {
	metrics := domain.ComparisonMetrics{
		Products: make([]domain.ProductComparison, 0, len(products)),
	}

	for _, p := range products {
		ppml, ok := pricePerML(p)
		metrics.Products = append(metrics.Products, domain.ProductComparison{
			ProductID:    p.ID,
			PricePerML:   ppml,
			HasPriceData: ok,
		})
		if ok {
			metrics.WithSizeInfo++
		}
		if hasConcentrationData(p) {
			metrics.WithConcentration++
		}
	}

	metrics.BestValueID, metrics.WorstValueID = valueExtremes(metrics.Products)
	metrics.HighestConcentration = highestConcentrations(products)

	return metrics
}

// pricePerML normalizes a product's price to a per-milliliter figure.
// Returns ok=false when the price, size or unit cannot support the
// calculation.
func pricePerML(p domain.Product) (float64, bool) {
	if p.Price <= 0 || p.Size <= 0 {
		return 0, false
	}
	factor, known := unitToML[strings.ToLower(strings.TrimSpace(p.SizeUnit))]
	if !known {
		return 0, false
	}
	return p.Price / (p.Size * factor), true
}

// valueExtremes picks the cheapest and most expensive per-milliliter products
// among those with usable data. The comparison is suppressed (empty IDs) when
// fewer than two products have data or all values are equal: a single value
// has nothing to contrast against.
func valueExtremes(comparisons []domain.ProductComparison) (bestID, worstID string) {
	var priced []domain.ProductComparison
	for _, c := range comparisons {
		if c.HasPriceData {
			priced = append(priced, c)
		}
	}
	if len(priced) < 2 {
		return "", ""
	}

	best, worst := priced[0], priced[0]
	allEqual := true
	for _, c := range priced[1:] {
		if c.PricePerML != priced[0].PricePerML {
			allEqual = false
		}
		if c.PricePerML < best.PricePerML {
			best = c
		}
		if c.PricePerML > worst.PricePerML {
			worst = c
		}
	}
	if allEqual {
		return "", ""
	}
	return best.ProductID, worst.ProductID
}

// highestConcentrations flags, per ingredient, the product declaring the
// highest numeric concentration. Ties keep the first-encountered product.
// Actives without a numeric concentration are never flagged: an unknown
// concentration is not a low one.
func highestConcentrations(products []domain.Product) map[string]string {
	type best struct {
		productID     string
		concentration float64
	}
	bests := make(map[string]best)

	for _, p := range products {
		for _, active := range p.ActiveIngredients {
			if active.Concentration == nil {
				continue
			}
			key := NormalizeIngredientName(active.Name)
			if key == "" {
				continue
			}
			current, seen := bests[key]
			if !seen || *active.Concentration > current.concentration {
				bests[key] = best{productID: p.ID, concentration: *active.Concentration}
			}
		}
	}

	if len(bests) == 0 {
		return nil
	}
	flags := make(map[string]string, len(bests))
	for key, b := range bests {
		flags[key] = b.productID
	}
	return flags
}

// hasConcentrationData reports whether any active on the product declares a
// numeric concentration.
func hasConcentrationData(p domain.Product) bool {
	for _, active := range p.ActiveIngredients {
		if active.Concentration != nil {
			return true
		}
	}
	return false
}

// HighlightExtremes applies the shared highlight policy to an arbitrary
// per-product metric: returns the IDs holding the minimum and maximum value,
// or empty strings when fewer than two values exist or all are equal.
func HighlightExtremes(ids []string, values []float64) (minID, maxID string) {
	if len(ids) < 2 || len(ids) != len(values) {
		return "", ""
	}

	minIdx, maxIdx := 0, 0
	allEqual := true
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			allEqual = false
		}
		if values[i] < values[minIdx] {
			minIdx = i
		}
		if values[i] > values[maxIdx] {
			maxIdx = i
		}
	}
	if allEqual {
		return "", ""
	}
	return ids[minIdx], ids[maxIdx]
}
