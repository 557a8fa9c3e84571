package service_test

import (
	"math"
	"testing"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

func newTestState(t *testing.T) *session.State {
	t.Helper()
	return session.New()
}

func addIngredient(t *testing.T, st *session.State, name string, kcal, protein float64) model.Ingredient {
	t.Helper()
	ing, err := service.CreateIngredient(st, service.IngredientInput{
		Name:           name,
		CaloriesPer100: kcal,
		ProteinPer100:  protein,
		Unit:           model.UnitGrams,
	})
	if err != nil {
		t.Fatalf("create ingredient %s: %v", name, err)
	}
	return ing
}

func addRecipe(t *testing.T, st *session.State, name string, entries ...model.RecipeIngredient) model.Recipe {
	t.Helper()
	recipe, err := service.CreateRecipe(st, service.RecipeInput{Name: name, Ingredients: entries})
	if err != nil {
		t.Fatalf("create recipe %s: %v", name, err)
	}
	return recipe
}

func addPerson(t *testing.T, st *session.State, name string) model.Person {
	t.Helper()
	person, err := service.CreatePerson(st, service.PersonInput{Name: name})
	if err != nil {
		t.Fatalf("create person %s: %v", name, err)
	}
	return person
}

func addMeal(t *testing.T, st *session.State, personID, weekday string, mealType model.MealType, recipeID string, quantity float64) model.Meal {
	t.Helper()
	meal, err := service.AddMeal(st, service.AddMealInput{
		PersonID: personID,
		Weekday:  weekday,
		Type:     mealType,
		RecipeID: recipeID,
		Quantity: quantity,
	})
	if err != nil {
		t.Fatalf("add meal on %s: %v", weekday, err)
	}
	return meal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
