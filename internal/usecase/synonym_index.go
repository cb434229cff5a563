package usecase

import "strings"

// concernSynonyms maps each canonical concern to the textual variants a
// product or survey answer may use for it. The canonical key is always a
// member of its own variant set. Lookup is case-insensitive on the key;
// membership tests are exact-match against the variant list, never substring.
var concernSynonyms = map[string][]string{
	"acne": {
		"acne", "breakouts", "pimples", "blemishes", "acne-prone",
		"acne & blemishes", "spots",
	},
	"aging": {
		"aging", "anti-aging", "fine lines", "wrinkles", "fine lines & wrinkles",
		"loss of firmness", "sagging", "mature skin",
	},
	"dryness": {
		"dryness", "dry skin", "dehydration", "dehydrated skin", "flaky skin",
		"rough skin",
	},
	"oiliness": {
		"oiliness", "oily skin", "excess oil", "shine", "excess sebum",
	},
	"dark spots": {
		"dark spots", "hyperpigmentation", "pigmentation", "uneven skin tone",
		"sun spots", "age spots", "melasma", "post-acne marks",
	},
	"redness": {
		"redness", "rosacea", "irritation", "inflammation", "sensitive skin",
		"sensitivity",
	},
	"dullness": {
		"dullness", "dull skin", "uneven texture", "lack of radiance",
		"tired-looking skin",
	},
	"pores": {
		"pores", "large pores", "enlarged pores", "clogged pores", "blackheads",
	},
	"texture": {
		"texture", "uneven texture", "rough texture", "bumpy skin",
	},
	"dark circles": {
		"dark circles", "under-eye circles", "puffiness", "eye bags",
	},
}

// concernIngredients maps each concern to the ingredient name fragments known
// to address it. Matching against this table is bidirectional substring
// containment (see MatchesIngredient), which is deliberately looser than
// concern matching so "Niacinamide 10%" still matches "niacinamide".
var concernIngredients = map[string][]string{
	"acne": {
		"salicylic acid", "benzoyl peroxide", "niacinamide", "tea tree",
		"zinc", "sulfur", "azelaic acid",
	},
	"aging": {
		"retinol", "retinal", "peptide", "collagen", "vitamin c", "bakuchiol",
		"coenzyme q10", "hyaluronic acid",
	},
	"dryness": {
		"hyaluronic acid", "ceramide", "glycerin", "squalane", "shea butter",
		"panthenol", "urea",
	},
	"oiliness": {
		"niacinamide", "salicylic acid", "clay", "witch hazel", "zinc",
	},
	"dark spots": {
		"vitamin c", "kojic acid", "alpha arbutin", "tranexamic acid",
		"niacinamide", "azelaic acid", "licorice",
	},
	"redness": {
		"centella", "cica", "aloe", "allantoin", "panthenol", "oat",
		"azelaic acid", "green tea",
	},
	"dullness": {
		"vitamin c", "glycolic acid", "lactic acid", "aha", "niacinamide",
	},
	"pores": {
		"niacinamide", "salicylic acid", "retinol", "clay",
	},
	"texture": {
		"glycolic acid", "lactic acid", "mandelic acid", "aha", "retinol",
		"urea",
	},
	"dark circles": {
		"caffeine", "vitamin k", "retinol", "vitamin c", "peptide",
	},
}

// SynonymsFor returns the variant set for a canonical concern key.
// Unknown keys resolve to nil, with no partial or fuzzy fallback.
func SynonymsFor(concern string) []string {
	return concernSynonyms[strings.ToLower(concern)]
}

// IngredientsFor returns the beneficial ingredient fragments for a concern.
// Unknown keys resolve to nil.
func IngredientsFor(concern string) []string {
	return concernIngredients[strings.ToLower(concern)]
}
