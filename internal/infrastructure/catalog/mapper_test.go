package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConcentration(t *testing.T) {
	pct := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		raw      string
		expected *float64
	}{
		{"json number", `10`, pct(10)},
		{"json decimal", `0.5`, pct(0.5)},
		{"numeric string", `"10"`, pct(10)},
		{"percent string", `"10%"`, pct(10)},
		{"padded percent string", `"0.5 %"`, pct(0.5)},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"bare percent sign", `"%"`, nil},
		{"non-numeric text", `"high strength"`, nil},
		{"object", `{"value": 10}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseConcentration(json.RawMessage(tt.raw))
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}

	t.Run("missing field", func(t *testing.T) {
		assert.Nil(t, parseConcentration(nil))
	})
}

func TestProductRowToDomain(t *testing.T) {
	raw := `{
		"id": "cream-1",
		"name": "Barrier Cream",
		"brand": "DermaLens Labs",
		"category": "moisturizer",
		"description": "Rich night cream",
		"price": 32.5,
		"rating": 4.7,
		"review_count": 340,
		"size": 1.7,
		"size_unit": "oz",
		"concerns": ["dryness", "redness"],
		"key_ingredients": ["Ceramides", "Squalane"],
		"active_ingredients": [
			{"name": "Niacinamide", "concentration": "5%"},
			{"name": "Ceramide NP", "concentration": null}
		],
		"skin_types": ["dry", "sensitive"],
		"preferences": {"fragrance-free": true},
		"in_stock": false
	}`

	var row productRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	product := row.toDomain()

	assert.Equal(t, "cream-1", product.ID)
	assert.Equal(t, "Barrier Cream", product.Name)
	assert.Equal(t, "DermaLens Labs", product.Brand)
	assert.Equal(t, "moisturizer", product.Category)
	assert.Equal(t, 32.5, product.Price)
	assert.Equal(t, 4.7, product.Rating)
	assert.Equal(t, 340, product.ReviewCount)
	assert.Equal(t, 1.7, product.Size)
	assert.Equal(t, "oz", product.SizeUnit)
	assert.Equal(t, []string{"dryness", "redness"}, product.Concerns)
	assert.Equal(t, []string{"Ceramides", "Squalane"}, product.KeyIngredients)
	assert.Equal(t, []string{"dry", "sensitive"}, product.SkinTypes)
	assert.True(t, product.Preferences["fragrance-free"])
	assert.False(t, product.InStock)

	require.Len(t, product.ActiveIngredients, 2)
	require.NotNil(t, product.ActiveIngredients[0].Concentration)
	assert.Equal(t, 5.0, *product.ActiveIngredients[0].Concentration)
	assert.Nil(t, product.ActiveIngredients[1].Concentration)
}

func TestProductRowToDomain_EmptyActives(t *testing.T) {
	row := productRow{ID: "mist-1", Name: "Hydrating Mist", Category: "mist"}

	product := row.toDomain()

	assert.Nil(t, product.ActiveIngredients)
	assert.Empty(t, product.Concerns)
}
