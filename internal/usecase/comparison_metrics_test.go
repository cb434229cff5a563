package usecase

import (
	"math"
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildComparisonMetrics(t *testing.T) {
	t.Run("computes price per milliliter and value extremes", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 30, Size: 30, SizeUnit: "ml"},  // 1.00/ml
			{ID: "b", Price: 15, Size: 50, SizeUnit: "ml"},  // 0.30/ml
			{ID: "c", Price: 29.6, Size: 1, SizeUnit: "oz"}, // ~1.00/ml
		}

		metrics := BuildComparisonMetrics(products)

		if metrics.WithSizeInfo != 3 {
			t.Errorf("WithSizeInfo = %d, want 3", metrics.WithSizeInfo)
		}
		if metrics.BestValueID != "b" {
			t.Errorf("BestValueID = %q, want b", metrics.BestValueID)
		}
		if metrics.WorstValueID != "c" {
			t.Errorf("WorstValueID = %q, want c", metrics.WorstValueID)
		}
		if math.Abs(metrics.Products[0].PricePerML-1.0) > 1e-9 {
			t.Errorf("PricePerML[a] = %v, want 1.0", metrics.Products[0].PricePerML)
		}
	})

	t.Run("products without usable data are excluded, not zeroed", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 30, Size: 30, SizeUnit: "ml"},
			{ID: "b", Price: 10, Size: 50, SizeUnit: "ml"},
			{ID: "no-size", Price: 5},
			{ID: "no-unit", Price: 5, Size: 50, SizeUnit: "drops"},
		}

		metrics := BuildComparisonMetrics(products)

		if metrics.WithSizeInfo != 2 {
			t.Errorf("WithSizeInfo = %d, want 2", metrics.WithSizeInfo)
		}
		// A missing PPML must never win best value by defaulting to zero.
		if metrics.BestValueID != "b" {
			t.Errorf("BestValueID = %q, want b", metrics.BestValueID)
		}
		for _, p := range metrics.Products {
			if (p.ProductID == "no-size" || p.ProductID == "no-unit") && p.HasPriceData {
				t.Errorf("product %q should have no price data", p.ProductID)
			}
		}
	})

	t.Run("single priced product suppresses the value comparison", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 30, Size: 30, SizeUnit: "ml"},
			{ID: "b", Price: 10},
		}

		metrics := BuildComparisonMetrics(products)
		if metrics.BestValueID != "" || metrics.WorstValueID != "" {
			t.Errorf("extremes = (%q, %q), want suppressed", metrics.BestValueID, metrics.WorstValueID)
		}
	})

	t.Run("equal values suppress the comparison", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 30, Size: 30, SizeUnit: "ml"},
			{ID: "b", Price: 30, Size: 30, SizeUnit: "ml"},
		}

		metrics := BuildComparisonMetrics(products)
		if metrics.BestValueID != "" || metrics.WorstValueID != "" {
			t.Errorf("extremes = (%q, %q), want suppressed", metrics.BestValueID, metrics.WorstValueID)
		}
	})

	t.Run("flags highest concentration per ingredient", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", ActiveIngredients: []domain.ActiveIngredient{
				{Name: "Niacinamide 5%", Concentration: floatPtr(5)},
				{Name: "Retinol", Concentration: floatPtr(0.3)},
			}},
			{ID: "b", ActiveIngredients: []domain.ActiveIngredient{
				{Name: "Niacinamide 10%", Concentration: floatPtr(10)},
				{Name: "Salicylic Acid"}, // unknown concentration
			}},
		}

		metrics := BuildComparisonMetrics(products)

		if metrics.WithConcentration != 2 {
			t.Errorf("WithConcentration = %d, want 2", metrics.WithConcentration)
		}
		if metrics.HighestConcentration["niacinamide"] != "b" {
			t.Errorf("highest niacinamide = %q, want b", metrics.HighestConcentration["niacinamide"])
		}
		if metrics.HighestConcentration["retinol"] != "a" {
			t.Errorf("highest retinol = %q, want a", metrics.HighestConcentration["retinol"])
		}
		if _, flagged := metrics.HighestConcentration["salicylic acid"]; flagged {
			t.Error("unknown concentration must never be flagged as highest")
		}
	})

	t.Run("concentration ties keep the first-encountered product", func(t *testing.T) {
		products := []domain.Product{
			{ID: "first", ActiveIngredients: []domain.ActiveIngredient{
				{Name: "Niacinamide", Concentration: floatPtr(10)},
			}},
			{ID: "second", ActiveIngredients: []domain.ActiveIngredient{
				{Name: "Niacinamide", Concentration: floatPtr(10)},
			}},
		}

		metrics := BuildComparisonMetrics(products)
		if metrics.HighestConcentration["niacinamide"] != "first" {
			t.Errorf("tie winner = %q, want first", metrics.HighestConcentration["niacinamide"])
		}
	})

	t.Run("empty selection yields empty metrics", func(t *testing.T) {
		metrics := BuildComparisonMetrics(nil)
		if len(metrics.Products) != 0 || metrics.BestValueID != "" || metrics.HighestConcentration != nil {
			t.Errorf("unexpected metrics for empty selection: %+v", metrics)
		}
	})
}

func TestHighlightExtremes(t *testing.T) {
	t.Run("returns min and max holders", func(t *testing.T) {
		minID, maxID := HighlightExtremes([]string{"a", "b", "c"}, []float64{4.2, 4.9, 3.8})
		if minID != "c" || maxID != "b" {
			t.Errorf("extremes = (%q, %q), want (c, b)", minID, maxID)
		}
	})

	t.Run("suppressed below two members", func(t *testing.T) {
		minID, maxID := HighlightExtremes([]string{"a"}, []float64{4.2})
		if minID != "" || maxID != "" {
			t.Errorf("extremes = (%q, %q), want suppressed", minID, maxID)
		}
	})

	t.Run("suppressed when all values are equal", func(t *testing.T) {
		minID, maxID := HighlightExtremes([]string{"a", "b"}, []float64{4.2, 4.2})
		if minID != "" || maxID != "" {
			t.Errorf("extremes = (%q, %q), want suppressed", minID, maxID)
		}
	})

	t.Run("mismatched input lengths are suppressed", func(t *testing.T) {
		minID, maxID := HighlightExtremes([]string{"a", "b"}, []float64{4.2})
		if minID != "" || maxID != "" {
			t.Errorf("extremes = (%q, %q), want suppressed", minID, maxID)
		}
	})
}
