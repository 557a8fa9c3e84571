package service

import (
	"fmt"
	"strings"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

type RecipeInput struct {
	Name        string
	Ingredients []model.RecipeIngredient
}

func CreateRecipe(st *session.State, in RecipeInput) (model.Recipe, error) {
	if err := validateRecipeInput(in); err != nil {
		return model.Recipe{}, err
	}
	recipe := model.Recipe{
		ID:          session.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Ingredients: append([]model.RecipeIngredient(nil), in.Ingredients...),
	}
	totals := ComputeNutrition(st, recipe.Ingredients)
	recipe.TotalCalories = totals.Calories
	recipe.TotalProtein = totals.Protein
	st.Recipes[recipe.ID] = recipe
	return recipe, nil
}

// UpdateRecipe replaces the recipe's name and ingredient list, recomputes
// the cached totals, and refreshes every meal referencing the recipe.
// Updating an unknown id is a no-op.
func UpdateRecipe(st *session.State, id string, in RecipeInput) error {
	if err := validateRecipeInput(in); err != nil {
		return err
	}
	recipe, ok := st.Recipe(id)
	if !ok {
		return nil
	}
	recipe.Name = strings.TrimSpace(in.Name)
	recipe.Ingredients = append([]model.RecipeIngredient(nil), in.Ingredients...)
	st.Recipes[id] = recipe
	RecomputeRecipeTotals(st, id)
	return nil
}

// RecomputeRecipeTotals resyncs the recipe's cached totals with its current
// ingredient list, then refreshes the cached fields of every meal that
// references the recipe (and the day totals above them). Stale totals are a
// defect, so this runs synchronously on every mutation that can move them.
func RecomputeRecipeTotals(st *session.State, id string) {
	recipe, ok := st.Recipe(id)
	if !ok {
		return
	}
	totals := ComputeNutrition(st, recipe.Ingredients)
	recipe.TotalCalories = totals.Calories
	recipe.TotalProtein = totals.Protein
	st.Recipes[id] = recipe
	refreshMealsForRecipe(st, id)
}

// DeleteRecipe removes the recipe and cascades: every meal referencing it is
// removed from every person's plan and the affected day totals recomputed.
func DeleteRecipe(st *session.State, id string) {
	if _, ok := st.Recipe(id); !ok {
		return
	}
	delete(st.Recipes, id)

	for personID, plan := range st.Plans {
		changed := false
		days := make([]model.Day, 0, len(plan.Days))
		for _, day := range plan.Days {
			kept := make([]model.Meal, 0, len(day.Meals))
			for _, meal := range day.Meals {
				if meal.RecipeID == id {
					changed = true
					continue
				}
				kept = append(kept, meal)
			}
			day.Meals = kept
			days = append(days, recomputeDay(day))
		}
		if changed {
			plan.Days = days
			st.Plans[personID] = plan
		}
	}
}

// ResolveRecipe finds a recipe by id or (case-insensitive) name, for use by
// the command surface.
func ResolveRecipe(st *session.State, idOrName string) (model.Recipe, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return model.Recipe{}, fmt.Errorf("recipe identifier is required")
	}
	if recipe, ok := st.Recipe(idOrName); ok {
		return recipe, nil
	}
	want := normalizeName(idOrName)
	for _, recipe := range st.Recipes {
		if normalizeName(recipe.Name) == want {
			return recipe, nil
		}
	}
	return model.Recipe{}, fmt.Errorf("recipe %q not found", idOrName)
}

func validateRecipeInput(in RecipeInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	for _, ri := range in.Ingredients {
		if err := validateNonNegativeFloat("ingredient quantity", ri.Quantity); err != nil {
			return err
		}
	}
	return nil
}
