package service

import (
	"math"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

// ComputeNutrition sums the nutrition contributed by each (ingredient,
// quantity) pair. Densities are per 100 units, so each pair contributes
// density * quantity / 100. Pairs whose ingredient id does not resolve are
// skipped silently; a recipe edited against a shrinking catalog still yields
// a usable preview. Order of pairs does not affect the result.
func ComputeNutrition(st *session.State, pairs []model.RecipeIngredient) model.Totals {
	var totals model.Totals
	for _, pair := range pairs {
		ing, ok := st.Ingredient(pair.IngredientID)
		if !ok {
			continue
		}
		totals.Calories += ing.CaloriesPer100 * pair.Quantity / 100
		totals.Protein += ing.ProteinPer100 * pair.Quantity / 100
	}
	return totals
}

// CoalesceQuantity applies the meal multiplier rule: zero or NaN means one
// serving. An explicit zero multiplier is deliberately not honored as "zero
// servings"; every aggregate downstream depends on this exact behavior.
func CoalesceQuantity(q float64) float64 {
	if q == 0 || math.IsNaN(q) {
		return 1
	}
	return q
}
