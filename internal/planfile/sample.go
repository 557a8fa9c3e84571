package planfile

import (
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

// Sample builds the built-in demo session: a small catalog, five recipes,
// and three people, one of whom has a Monday-Friday plan. Every command is
// runnable against it without a plan file.
func Sample() *session.State {
	st, err := Build(sampleDocument(), nil)
	if err != nil {
		// The sample document is fixed; a build failure is a programming error.
		panic(err)
	}
	return st
}

func sampleDocument() Document {
	return Document{
		Ingredients: []IngredientDoc{
			{Name: "Chicken Breast", CaloriesPer100: 165, ProteinPer100: 31, Unit: "g"},
			{Name: "Brown Rice", CaloriesPer100: 111, ProteinPer100: 2.6, Unit: "g"},
			{Name: "Broccoli", CaloriesPer100: 34, ProteinPer100: 2.8, Unit: "g"},
			{Name: "Eggs", CaloriesPer100: 155, ProteinPer100: 13, Unit: "g"},
			{Name: "Oatmeal", CaloriesPer100: 68, ProteinPer100: 2.4, Unit: "g"},
			{Name: "Greek Yogurt", CaloriesPer100: 59, ProteinPer100: 10, Unit: "g"},
			{Name: "Salmon", CaloriesPer100: 208, ProteinPer100: 25, Unit: "g"},
			{Name: "Sweet Potato", CaloriesPer100: 86, ProteinPer100: 1.6, Unit: "g"},
			{Name: "Spinach", CaloriesPer100: 23, ProteinPer100: 2.9, Unit: "g"},
			{Name: "Almonds", CaloriesPer100: 579, ProteinPer100: 21, Unit: "g"},
			{Name: "Banana", CaloriesPer100: 89, ProteinPer100: 1.1, Unit: "g"},
			{Name: "Quinoa", CaloriesPer100: 120, ProteinPer100: 4.4, Unit: "g"},
		},
		Recipes: []RecipeDoc{
			{Name: "Protein Power Bowl", Ingredients: []RecipeEntryDoc{
				{Ingredient: "Chicken Breast", Quantity: 150},
				{Ingredient: "Brown Rice", Quantity: 100},
				{Ingredient: "Broccoli", Quantity: 80},
				{Ingredient: "Spinach", Quantity: 50},
			}},
			{Name: "Greek Yogurt Parfait", Ingredients: []RecipeEntryDoc{
				{Ingredient: "Greek Yogurt", Quantity: 200},
				{Ingredient: "Banana", Quantity: 100},
				{Ingredient: "Almonds", Quantity: 20},
			}},
			{Name: "Salmon & Quinoa", Ingredients: []RecipeEntryDoc{
				{Ingredient: "Salmon", Quantity: 120},
				{Ingredient: "Quinoa", Quantity: 80},
				{Ingredient: "Sweet Potato", Quantity: 100},
			}},
			{Name: "Veggie Omelette", Ingredients: []RecipeEntryDoc{
				{Ingredient: "Eggs", Quantity: 200},
				{Ingredient: "Broccoli", Quantity: 60},
				{Ingredient: "Spinach", Quantity: 30},
			}},
			{Name: "Oatmeal Delight", Ingredients: []RecipeEntryDoc{
				{Ingredient: "Oatmeal", Quantity: 50},
				{Ingredient: "Banana", Quantity: 80},
				{Ingredient: "Almonds", Quantity: 15},
			}},
		},
		People: []PersonDoc{
			{
				Name:  "John Smith",
				Email: "john@example.com",
				Goals: &GoalsDoc{DailyCalories: 2500, DailyProtein: 180, WeeklyCalories: 17500, WeeklyProtein: 1260},
				Days: []DayDoc{
					{Weekday: "Monday", Meals: []MealDoc{
						{Type: "breakfast", Recipe: "Oatmeal Delight", Quantity: 1},
						{Type: "lunch", Recipe: "Protein Power Bowl", Quantity: 1},
						{Type: "dinner", Recipe: "Salmon & Quinoa", Quantity: 1},
					}},
					{Weekday: "Tuesday", Meals: []MealDoc{
						{Type: "breakfast", Recipe: "Greek Yogurt Parfait", Quantity: 1},
						{Type: "lunch", Recipe: "Veggie Omelette", Quantity: 1},
						{Type: "dinner", Recipe: "Protein Power Bowl", Quantity: 1},
					}},
					{Weekday: "Wednesday", Meals: []MealDoc{
						{Type: "breakfast", Recipe: "Oatmeal Delight", Quantity: 1},
						{Type: "lunch", Recipe: "Salmon & Quinoa", Quantity: 1},
						{Type: "dinner", Recipe: "Veggie Omelette", Quantity: 1},
					}},
					{Weekday: "Thursday", Meals: []MealDoc{
						{Type: "breakfast", Recipe: "Greek Yogurt Parfait", Quantity: 1},
						{Type: "lunch", Recipe: "Protein Power Bowl", Quantity: 1},
						{Type: "dinner", Recipe: "Salmon & Quinoa", Quantity: 1},
					}},
					{Weekday: "Friday", Meals: []MealDoc{
						{Type: "breakfast", Recipe: "Oatmeal Delight", Quantity: 1},
						{Type: "lunch", Recipe: "Veggie Omelette", Quantity: 1},
						{Type: "dinner", Recipe: "Protein Power Bowl", Quantity: 1},
					}},
				},
			},
			{
				Name:  "Sarah Johnson",
				Email: "sarah@example.com",
				Goals: &GoalsDoc{DailyCalories: 2000, DailyProtein: 120, WeeklyCalories: 14000, WeeklyProtein: 840},
			},
			{
				Name:  "Mike Wilson",
				Email: "mike@example.com",
				Goals: &GoalsDoc{DailyCalories: 3000, DailyProtein: 200, WeeklyCalories: 21000, WeeklyProtein: 1400},
			},
		},
	}
}
