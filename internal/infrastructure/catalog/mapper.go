package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// productRow mirrors a catalog table row. The catalog schema uses snake_case
// columns and stores actives/preferences as jsonb.
type productRow struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Price             float64         `json:"price"`
	Rating            float64         `json:"rating"`
	ReviewCount       int             `json:"review_count"`
	Size              float64         `json:"size"`
	SizeUnit          string          `json:"size_unit"`
	Concerns          []string        `json:"concerns"`
	KeyIngredients    []string        `json:"key_ingredients"`
	ActiveIngredients []activeRow     `json:"active_ingredients"`
	SkinTypes         []string        `json:"skin_types"`
	Preferences       map[string]bool `json:"preferences"`
	InStock           bool            `json:"in_stock"`
}

// activeRow tolerates the catalog's loose concentration typing: some rows
// store a number, others a labeled string like "10%".
type activeRow struct {
	Name          string          `json:"name"`
	Concentration json.RawMessage `json:"concentration"`
}

// toDomain converts a catalog row to the domain product model
func (r productRow) toDomain() domain.Product {
	actives := make([]domain.ActiveIngredient, 0, len(r.ActiveIngredients))
	for _, a := range r.ActiveIngredients {
		actives = append(actives, domain.ActiveIngredient{
			Name:          a.Name,
			Concentration: parseConcentration(a.Concentration),
		})
	}
	if len(actives) == 0 {
		actives = nil
	}

	return domain.Product{
		ID:                r.ID,
		Name:              r.Name,
		Brand:             r.Brand,
		Category:          r.Category,
		Description:       r.Description,
		Price:             r.Price,
		Rating:            r.Rating,
		ReviewCount:       r.ReviewCount,
		Size:              r.Size,
		SizeUnit:          r.SizeUnit,
		Concerns:          r.Concerns,
		KeyIngredients:    r.KeyIngredients,
		ActiveIngredients: actives,
		SkinTypes:         r.SkinTypes,
		Preferences:       r.Preferences,
		InStock:           r.InStock,
	}
}

// parseConcentration coerces a raw concentration value to a percentage.
// Accepts JSON numbers and strings like "10", "10%", "0.5 %". Anything else
// (null, empty, non-numeric text) maps to nil: unknown, not zero.
func parseConcentration(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return &number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &value
}
