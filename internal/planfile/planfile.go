// Package planfile loads a declarative YAML plan document into a session.
// The document is input for one run, not storage: entities reference each
// other by name inside the file and are rebuilt through the service layer so
// every cached total is derived, never trusted from the file.
package planfile

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

type Document struct {
	Ingredients []IngredientDoc `mapstructure:"ingredients"`
	Recipes     []RecipeDoc     `mapstructure:"recipes"`
	People      []PersonDoc     `mapstructure:"people"`
}

type IngredientDoc struct {
	Name           string  `mapstructure:"name"`
	CaloriesPer100 float64 `mapstructure:"calories_per_100"`
	ProteinPer100  float64 `mapstructure:"protein_per_100"`
	Unit           string  `mapstructure:"unit"`
}

type RecipeDoc struct {
	Name        string           `mapstructure:"name"`
	Ingredients []RecipeEntryDoc `mapstructure:"ingredients"`
}

type RecipeEntryDoc struct {
	Ingredient string  `mapstructure:"ingredient"`
	Quantity   float64 `mapstructure:"quantity"`
}

type PersonDoc struct {
	Name  string    `mapstructure:"name"`
	Email string    `mapstructure:"email"`
	Goals *GoalsDoc `mapstructure:"goals"`
	Days  []DayDoc  `mapstructure:"days"`
}

type GoalsDoc struct {
	DailyCalories  float64 `mapstructure:"daily_calories"`
	DailyProtein   float64 `mapstructure:"daily_protein"`
	WeeklyCalories float64 `mapstructure:"weekly_calories"`
	WeeklyProtein  float64 `mapstructure:"weekly_protein"`
}

type DayDoc struct {
	Weekday string    `mapstructure:"weekday"`
	Meals   []MealDoc `mapstructure:"meals"`
}

type MealDoc struct {
	Type     string  `mapstructure:"type"`
	Recipe   string  `mapstructure:"recipe"`
	Quantity float64 `mapstructure:"quantity"`
}

// Load reads a plan document from path and builds the session state.
func Load(path string, log *logrus.Logger) (*session.State, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read plan file %s: %w", path, err)
	}
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}
	return Build(doc, log)
}

// Build assembles a session from a document. References that do not resolve
// (a meal naming an unknown recipe, a recipe naming an unknown ingredient)
// are logged and skipped so the rest of the plan stays computable.
func Build(doc Document, log *logrus.Logger) (*session.State, error) {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.ErrorLevel)
	}
	st := session.New()

	ingredientIDs := make(map[string]string, len(doc.Ingredients))
	for _, d := range doc.Ingredients {
		ing, err := service.CreateIngredient(st, service.IngredientInput{
			Name:           d.Name,
			CaloriesPer100: d.CaloriesPer100,
			ProteinPer100:  d.ProteinPer100,
			Unit:           model.Unit(d.Unit),
		})
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", d.Name, err)
		}
		ingredientIDs[d.Name] = ing.ID
	}

	recipeIDs := make(map[string]string, len(doc.Recipes))
	for _, d := range doc.Recipes {
		entries := make([]model.RecipeIngredient, 0, len(d.Ingredients))
		for _, e := range d.Ingredients {
			id, ok := ingredientIDs[e.Ingredient]
			if !ok {
				log.WithFields(logrus.Fields{"recipe": d.Name, "ingredient": e.Ingredient}).
					Warn("recipe references unknown ingredient, skipping entry")
				continue
			}
			entries = append(entries, model.RecipeIngredient{IngredientID: id, Quantity: e.Quantity})
		}
		recipe, err := service.CreateRecipe(st, service.RecipeInput{Name: d.Name, Ingredients: entries})
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", d.Name, err)
		}
		recipeIDs[d.Name] = recipe.ID
	}

	for _, d := range doc.People {
		person, err := service.CreatePerson(st, service.PersonInput{Name: d.Name, Email: d.Email})
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", d.Name, err)
		}
		if d.Goals != nil {
			goals := model.NutritionGoals{
				DailyCalories:  d.Goals.DailyCalories,
				DailyProtein:   d.Goals.DailyProtein,
				WeeklyCalories: d.Goals.WeeklyCalories,
				WeeklyProtein:  d.Goals.WeeklyProtein,
			}
			if err := service.SetGoals(st, person.ID, goals); err != nil {
				return nil, fmt.Errorf("goals for %q: %w", d.Name, err)
			}
		}
		for _, dayDoc := range d.Days {
			for _, mealDoc := range dayDoc.Meals {
				recipeID, ok := recipeIDs[mealDoc.Recipe]
				if !ok {
					log.WithFields(logrus.Fields{"person": d.Name, "recipe": mealDoc.Recipe}).
						Warn("meal references unknown recipe, skipping")
					continue
				}
				if _, err := service.AddMeal(st, service.AddMealInput{
					PersonID: person.ID,
					Weekday:  dayDoc.Weekday,
					Type:     model.MealType(mealDoc.Type),
					RecipeID: recipeID,
					Quantity: mealDoc.Quantity,
				}); err != nil {
					return nil, fmt.Errorf("meal for %q on %s: %w", d.Name, dayDoc.Weekday, err)
				}
			}
		}
	}
	return st, nil
}
