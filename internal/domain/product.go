package domain

// ActiveIngredient is a labeled active with an optional declared concentration.
// Concentration is nil when the label does not state a percentage.
type ActiveIngredient struct {
	Name          string   `json:"name"`
	Concentration *float64 `json:"concentration,omitempty"` // percent
}

// Product represents a single catalog entry. The catalog is read-only input;
// the engine never mutates a Product.
type Product struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Brand             string             `json:"brand,omitempty"`
	Category          string             `json:"category"`
	Description       string             `json:"description,omitempty"`
	Price             float64            `json:"price"`
	Rating            float64            `json:"rating"` // 0-5
	ReviewCount       int                `json:"reviewCount"`
	Size              float64            `json:"size,omitempty"`
	SizeUnit          string             `json:"sizeUnit,omitempty"` // "ml", "oz", "g", ...
	Concerns          []string           `json:"concerns,omitempty"`
	KeyIngredients    []string           `json:"keyIngredients,omitempty"`
	ActiveIngredients []ActiveIngredient `json:"activeIngredients,omitempty"`
	SkinTypes         []string           `json:"skinTypes,omitempty"`
	Preferences       map[string]bool    `json:"preferences,omitempty"` // vegan, crueltyFree, fragranceFree, ...
	InStock           bool               `json:"inStock"`
}

// UserProfile is the current user's survey/session state. Missing fields mean
// "no signal", never an error.
type UserProfile struct {
	SkinType    string          `json:"skinType,omitempty"`
	Concerns    []string        `json:"concerns,omitempty"`
	Preferences map[string]bool `json:"preferences,omitempty"`
	Complexion  string          `json:"complexion,omitempty"`
	Sensitivity string          `json:"sensitivity,omitempty"`
	Lifestyle   []string        `json:"lifestyle,omitempty"`
	Age         int             `json:"age,omitempty"`
}

// ReviewProfile is the profile a reviewer attached to their review.
type ReviewProfile struct {
	SkinType     string   `json:"skinType,omitempty"`
	SkinConcerns []string `json:"skinConcerns,omitempty"`
	Complexion   string   `json:"complexion,omitempty"`
	Sensitivity  string   `json:"sensitivity,omitempty"`
	Lifestyle    []string `json:"lifestyle,omitempty"`
	Age          int      `json:"age,omitempty"`
}
