package usecase

import (
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

func compatCatalog() (domain.Product, []domain.Product) {
	reference := domain.Product{
		ID:             "retinol-serum",
		Name:           "Night Renewal Serum",
		Category:       "serum",
		KeyIngredients: []string{"Retinol"},
	}

	catalog := []domain.Product{
		reference,
		{
			ID:             "aha-toner",
			Name:           "Resurfacing Toner",
			Category:       "toner",
			KeyIngredients: []string{"Glycolic Acid", "Squalane"},
		},
		{
			ID:             "hydrating-cream",
			Name:           "Barrier Cream",
			Category:       "moisturizer",
			KeyIngredients: []string{"Ceramides", "Hyaluronic Acid"},
		},
		{
			ID:             "vitc-serum",
			Name:           "Glow Serum",
			Category:       "serum",
			KeyIngredients: []string{"Vitamin C"},
		},
		{
			ID:             "niacinamide-essence",
			Name:           "Balancing Essence",
			Category:       "essence",
			KeyIngredients: []string{"Niacinamide", "Vitamin C"},
		},
		{
			ID:       "bare-mist",
			Name:     "Hydrating Mist",
			Category: "mist",
		},
	}

	return reference, catalog
}

func TestFindCompatibleProducts(t *testing.T) {
	service := NewPairingService(PairingConfig{Limit: 8})

	t.Run("avoid pair excludes the candidate outright", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		for _, r := range results {
			if r.Product.ID == "aha-toner" {
				t.Error("aha-toner pairs retinol with glycolic acid (avoid) and must be excluded")
			}
		}
	})

	t.Run("same-category candidates are excluded", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		for _, r := range results {
			if r.Product.Category == reference.Category {
				t.Errorf("same-category product %q must not appear", r.Product.ID)
			}
		}
	})

	t.Run("candidates without key ingredients are skipped", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		for _, r := range results {
			if r.Product.ID == "bare-mist" {
				t.Error("candidate with no key ingredients cannot be judged compatible")
			}
		}
	})

	t.Run("reference without key ingredients returns empty", func(t *testing.T) {
		_, catalog := compatCatalog()
		bareReference := domain.Product{ID: "bare", Category: "serum"}

		results := service.FindCompatibleProducts(catalog, bareReference, domain.UserProfile{})
		if len(results) != 0 {
			t.Errorf("len(results) = %d, want 0", len(results))
		}
	})

	t.Run("fully-compatible ranks above use-with-care", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		if len(results) == 0 {
			t.Fatal("expected results")
		}

		seenCare := false
		for _, r := range results {
			if r.Level == domain.PairingUseWithCare {
				seenCare = true
			}
			if seenCare && r.Level == domain.PairingFullyCompatible {
				t.Error("fully-compatible result ranked below use-with-care")
			}
		}
	})

	t.Run("caution pairs classify as use-with-care with caution text", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		for _, r := range results {
			if r.Product.ID != "niacinamide-essence" {
				continue
			}
			// Retinol x Vitamin C is a caution pair.
			if r.Level != domain.PairingUseWithCare {
				t.Errorf("Level = %v, want use-with-care", r.Level)
			}
			if len(r.Cautions) == 0 {
				t.Error("use-with-care result should carry caution text")
			}
			// 1 safe pair (niacinamide) and 1 caution pair (vitamin c) -> 50.
			if r.CompatScore != 50 {
				t.Errorf("CompatScore = %v, want 50", r.CompatScore)
			}
			return
		}
		t.Error("niacinamide-essence missing from results")
	})

	t.Run("clean candidates are fully compatible at score 100", func(t *testing.T) {
		reference, catalog := compatCatalog()

		results := service.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		for _, r := range results {
			if r.Product.ID != "hydrating-cream" {
				continue
			}
			if r.Level != domain.PairingFullyCompatible {
				t.Errorf("Level = %v, want fully-compatible", r.Level)
			}
			if r.CompatScore != 100 {
				t.Errorf("CompatScore = %v, want 100", r.CompatScore)
			}
			if len(r.Reasons) == 0 {
				t.Error("a generic reason should be synthesized when no specific one exists")
			}
			return
		}
		t.Error("hydrating-cream missing from results")
	})

	t.Run("user profile boosts ranking within a level", func(t *testing.T) {
		reference := domain.Product{ID: "ref", Category: "serum", KeyIngredients: []string{"Squalane"}}
		catalog := []domain.Product{
			reference,
			{ID: "plain", Category: "moisturizer", KeyIngredients: []string{"Ceramides"}},
			{
				ID:             "fitted",
				Category:       "toner",
				KeyIngredients: []string{"Panthenol"},
				Concerns:       []string{"breakouts"},
				SkinTypes:      []string{"oily"},
			},
		}
		user := domain.UserProfile{SkinType: "oily", Concerns: []string{"acne"}}

		results := service.FindCompatibleProducts(catalog, reference, user)
		if len(results) != 2 {
			t.Fatalf("len(results) = %d, want 2", len(results))
		}
		if results[0].Product.ID != "fitted" {
			t.Errorf("first result = %q, want fitted (user boost)", results[0].Product.ID)
		}
		if results[0].UserBoost != userBoostPerConcern+userBoostSkinType {
			t.Errorf("UserBoost = %d, want %d", results[0].UserBoost, userBoostPerConcern+userBoostSkinType)
		}
	})

	t.Run("truncates to the configured limit", func(t *testing.T) {
		small := NewPairingService(PairingConfig{Limit: 1})
		reference, catalog := compatCatalog()

		results := small.FindCompatibleProducts(catalog, reference, domain.UserProfile{})
		if len(results) > 1 {
			t.Errorf("len(results) = %d, want at most 1", len(results))
		}
	})
}

func TestDedupCap(t *testing.T) {
	got := dedupCap([]string{"a", "b", "a", "c", "b"}, 2)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("dedupCap = %v, want [a b]", got)
	}

	if out := dedupCap(nil, 2); out != nil {
		t.Errorf("dedupCap(nil) = %v, want nil", out)
	}
}
