package usecase

import (
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// Keyword lists for the first cascade layer, scanned over name+description.
var (
	amKeywords = []string{
		"morning", "day cream", "daytime", "spf", "sun protection",
		"uv protection", "daily defense", "wake up", "energizing",
	}
	pmKeywords = []string{
		"night", "overnight", "sleeping", "evening", "before bed",
		"while you sleep", "pm repair",
	}
)

// Ingredient lists for the second layer. Photosensitizing or UV-degraded
// actives push toward PM; antioxidants that pair with sunscreen push AM.
var (
	amIngredients = []string{
		"vitamin c", "ascorbic", "caffeine", "green tea", "ferulic",
	}
	pmIngredients = []string{
		"retinol", "retinal", "tretinoin", "glycolic", "lactic acid",
		"aha", "bakuchiol", "peeling",
	}
)

// categoryDefaults is the third layer: a product category's conventional
// slot, used only when neither keywords nor ingredients gave a signal.
var categoryDefaults = map[string]domain.TimeOfDay{
	"sunscreen":   {AM: true},
	"mask":        {PM: true},
	"cleanser":    {AM: true, PM: true},
	"toner":       {AM: true, PM: true},
	"serum":       {AM: true, PM: true},
	"moisturizer": {AM: true, PM: true},
	"eye cream":   {AM: true, PM: true},
	"exfoliant":   {PM: true},
	"oil":         {PM: true},
	"essence":     {AM: true, PM: true},
	"mist":        {AM: true, PM: true},
}

// ClassifyTimeOfDay decides whether a product belongs in the AM routine, the
// PM routine, or both. Layers are consulted in order: text keywords, then
// ingredient names, then category defaults, then both as the final fallback.
// Keywords and ingredients are combined: once either layer fires at all, the
// result is final and the category default is never consulted.
func ClassifyTimeOfDay(p domain.Product) domain.TimeOfDay {
	text := strings.ToLower(p.Name + " " + p.Description)

	result := domain.TimeOfDay{
		AM: containsAny(text, amKeywords),
		PM: containsAny(text, pmKeywords),
	}
	if result.AM || result.PM {
		return result
	}

	for _, name := range allIngredientNames(p) {
		nameLower := strings.ToLower(name)
		if containsAny(nameLower, amIngredients) {
			result.AM = true
		}
		if containsAny(nameLower, pmIngredients) {
			result.PM = true
		}
	}
	if result.AM || result.PM {
		return result
	}

	if slot, ok := categoryDefaults[strings.ToLower(p.Category)]; ok {
		return slot
	}
	return domain.TimeOfDay{AM: true, PM: true}
}

// allIngredientNames gathers key ingredients and active ingredient names into
// one scan list.
func allIngredientNames(p domain.Product) []string {
	names := make([]string, 0, len(p.KeyIngredients)+len(p.ActiveIngredients))
	names = append(names, p.KeyIngredients...)
	for _, active := range p.ActiveIngredients {
		names = append(names, active.Name)
	}
	return names
}

// containsAny reports whether s contains any of the listed substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
