package service

import (
	"fmt"
	"strings"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

type IngredientInput struct {
	Name           string
	CaloriesPer100 float64
	ProteinPer100  float64
	Unit           model.Unit
}

func CreateIngredient(st *session.State, in IngredientInput) (model.Ingredient, error) {
	if err := validateIngredientInput(in); err != nil {
		return model.Ingredient{}, err
	}
	ing := model.Ingredient{
		ID:             session.NewID(),
		Name:           strings.TrimSpace(in.Name),
		CaloriesPer100: in.CaloriesPer100,
		ProteinPer100:  in.ProteinPer100,
		Unit:           in.Unit,
	}
	st.Ingredients[ing.ID] = ing
	return ing, nil
}

// UpdateIngredient replaces the ingredient's fields and recomputes the
// cached totals of every recipe referencing it. Updating an id that is not
// in the catalog is a no-op.
func UpdateIngredient(st *session.State, id string, in IngredientInput) error {
	if err := validateIngredientInput(in); err != nil {
		return err
	}
	ing, ok := st.Ingredient(id)
	if !ok {
		return nil
	}
	ing.Name = strings.TrimSpace(in.Name)
	ing.CaloriesPer100 = in.CaloriesPer100
	ing.ProteinPer100 = in.ProteinPer100
	ing.Unit = in.Unit
	st.Ingredients[id] = ing

	for _, recipe := range st.Recipes {
		if recipeUsesIngredient(recipe, id) {
			RecomputeRecipeTotals(st, recipe.ID)
		}
	}
	return nil
}

// DeleteIngredient removes the ingredient from the catalog and cascades:
// every recipe referencing it drops the entry and gets its totals
// recomputed, which in turn refreshes meals and day totals.
func DeleteIngredient(st *session.State, id string) {
	if _, ok := st.Ingredient(id); !ok {
		return
	}
	delete(st.Ingredients, id)

	for _, recipe := range st.Recipes {
		if !recipeUsesIngredient(recipe, id) {
			continue
		}
		kept := make([]model.RecipeIngredient, 0, len(recipe.Ingredients))
		for _, ri := range recipe.Ingredients {
			if ri.IngredientID != id {
				kept = append(kept, ri)
			}
		}
		recipe.Ingredients = kept
		st.Recipes[recipe.ID] = recipe
		RecomputeRecipeTotals(st, recipe.ID)
	}
}

// ResolveIngredient finds an ingredient by id or (case-insensitive) name,
// for use by the command surface.
func ResolveIngredient(st *session.State, idOrName string) (model.Ingredient, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return model.Ingredient{}, fmt.Errorf("ingredient identifier is required")
	}
	if ing, ok := st.Ingredient(idOrName); ok {
		return ing, nil
	}
	want := normalizeName(idOrName)
	for _, ing := range st.Ingredients {
		if normalizeName(ing.Name) == want {
			return ing, nil
		}
	}
	return model.Ingredient{}, fmt.Errorf("ingredient %q not found", idOrName)
}

func recipeUsesIngredient(recipe model.Recipe, ingredientID string) bool {
	for _, ri := range recipe.Ingredients {
		if ri.IngredientID == ingredientID {
			return true
		}
	}
	return false
}

func validateIngredientInput(in IngredientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("ingredient name is required")
	}
	if err := validateNonNegativeFloat("calories per 100", in.CaloriesPer100); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein per 100", in.ProteinPer100); err != nil {
		return err
	}
	if !model.ValidUnit(in.Unit) {
		return fmt.Errorf("unsupported unit %q", in.Unit)
	}
	return nil
}
