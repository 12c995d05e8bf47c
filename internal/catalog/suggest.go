package catalog

import (
	"github.com/agext/levenshtein"

	"github.com/sambacha/rules-closure/internal/types"
)

// SuggestThreshold is the minimum similarity for a "did you mean" suggestion
const SuggestThreshold = 0.75

// Suggest returns the registered type whose key is most similar to key.
// It returns false when key is registered or no candidate reaches
// SuggestThreshold.
func (r *Registry) Suggest(key string) (types.DiagnosticType, bool) {
	if r.Has(types.DiagnosticType(key)) {
		return "", false
	}

	var best types.DiagnosticType
	var bestScore float64
	for _, e := range r.All() {
		score := levenshtein.Similarity(key, e.Type.Key(), nil)
		if score > bestScore {
			bestScore = score
			best = e.Type
		}
	}

	if bestScore >= SuggestThreshold {
		return best, true
	}
	return "", false
}

// SuggestCategory returns the registered category most similar to name
func (r *Registry) SuggestCategory(name string) (types.Category, bool) {
	if r.HasCategory(types.Category(name)) {
		return "", false
	}

	var best types.Category
	var bestScore float64
	for _, c := range r.Categories() {
		score := levenshtein.Similarity(name, string(c), nil)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if bestScore >= SuggestThreshold {
		return best, true
	}
	return "", false
}
