package domain

// CompatLevel classifies a pairwise ingredient interaction.
type CompatLevel string

const (
	CompatSafe    CompatLevel = "safe"
	CompatCaution CompatLevel = "caution"
	CompatAvoid   CompatLevel = "avoid"
)

// CompatibilityResult is the outcome of checking one unordered ingredient pair.
// Resolution is only set for caution-level results.
type CompatibilityResult struct {
	Level      CompatLevel `json:"level"`
	Reason     string      `json:"reason"`
	Resolution string      `json:"resolution,omitempty"`
}

// ScoredProduct is a catalog product annotated with a similarity score and
// the human-readable reasons that contributed to it.
type ScoredProduct struct {
	Product      Product  `json:"product"`
	Score        int      `json:"score"`
	MatchReasons []string `json:"matchReasons,omitempty"`
}

// PairingLevel classifies how safely a candidate can be used alongside the
// reference product.
type PairingLevel string

const (
	PairingFullyCompatible PairingLevel = "fully-compatible"
	PairingUseWithCare     PairingLevel = "use-with-care"
)

// CompatibleProduct is a candidate judged safe (or safe-with-care) to use
// alongside a reference product.
type CompatibleProduct struct {
	Product     Product      `json:"product"`
	Level       PairingLevel `json:"level"`
	CompatScore float64      `json:"compatScore"` // safe/(safe+caution) ratio, 0-100
	UserBoost   int          `json:"userBoost"`
	Reasons     []string     `json:"reasons,omitempty"`
	Cautions    []string     `json:"cautions,omitempty"`
}

// MatchTier is the discrete bucket derived from a similarity weight.
type MatchTier string

const (
	TierFull    MatchTier = "full"
	TierStrong  MatchTier = "strong"
	TierPartial MatchTier = "partial"
	TierRelated MatchTier = "related"
	TierNone    MatchTier = "none"
)

// SimilarityWeight quantifies how alike a reviewer's profile is to the
// current user's, on a 0-100 scale.
type SimilarityWeight struct {
	Score        int       `json:"score"`
	MatchTier    MatchTier `json:"matchTier"`
	MatchDetails []string  `json:"matchDetails,omitempty"`
}

// TimeOfDay is the AM/PM classification of a product. Both flags set means
// the product suits either slot.
type TimeOfDay struct {
	AM bool `json:"am"`
	PM bool `json:"pm"`
}

// Slots renders the classification as the conventional label list.
func (t TimeOfDay) Slots() []string {
	var slots []string
	if t.AM {
		slots = append(slots, "am")
	}
	if t.PM {
		slots = append(slots, "pm")
	}
	return slots
}

// ProductComparison holds the per-product metrics of a comparison set.
type ProductComparison struct {
	ProductID    string  `json:"productId"`
	PricePerML   float64 `json:"pricePerMl"`
	HasPriceData bool    `json:"hasPriceData"`
}

// ComparisonMetrics is the side-by-side summary for a 1-3 product selection.
// BestValueID/WorstValueID are empty when fewer than two products have usable
// price-per-ml data or all values are equal.
type ComparisonMetrics struct {
	Products             []ProductComparison `json:"products"`
	BestValueID          string              `json:"bestValueId,omitempty"`
	WorstValueID         string              `json:"worstValueId,omitempty"`
	HighestConcentration map[string]string   `json:"highestConcentration,omitempty"` // ingredient -> product ID
	WithSizeInfo         int                 `json:"withSizeInfo"`
	WithConcentration    int                 `json:"withConcentration"`
}
