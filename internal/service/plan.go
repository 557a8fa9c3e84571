package service

import (
	"fmt"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

type AddMealInput struct {
	PersonID string
	Weekday  string
	Type     model.MealType
	RecipeID string
	Quantity float64
}

// AddMeal places a meal into the person's plan. The first meal for a weekday
// creates that Day record on demand. The meal's cached nutrition is the
// referenced recipe's totals times the coalesced quantity; a dangling recipe
// id contributes zero. Adding to a person without a plan is a no-op.
func AddMeal(st *session.State, in AddMealInput) (model.Meal, error) {
	if !model.ValidWeekday(in.Weekday) {
		return model.Meal{}, fmt.Errorf("unknown weekday %q", in.Weekday)
	}
	if !model.ValidMealType(in.Type) {
		return model.Meal{}, fmt.Errorf("unknown meal type %q", in.Type)
	}
	plan, ok := st.Plan(in.PersonID)
	if !ok {
		return model.Meal{}, nil
	}

	quantity := CoalesceQuantity(in.Quantity)
	meal := model.Meal{
		ID:       session.NewID(),
		Type:     in.Type,
		RecipeID: in.RecipeID,
		Quantity: quantity,
	}
	if recipe, ok := st.Recipe(in.RecipeID); ok {
		meal.Calories = recipe.TotalCalories * quantity
		meal.Protein = recipe.TotalProtein * quantity
	}

	dayIdx := -1
	for i, day := range plan.Days {
		if day.Weekday == in.Weekday {
			dayIdx = i
			break
		}
	}
	if dayIdx < 0 {
		plan.Days = append(plan.Days, model.Day{ID: session.NewID(), Weekday: in.Weekday})
		dayIdx = len(plan.Days) - 1
	}

	day := plan.Days[dayIdx]
	day.Meals = append(append([]model.Meal(nil), day.Meals...), meal)
	plan.Days = append([]model.Day(nil), plan.Days...)
	plan.Days[dayIdx] = recomputeDay(day)
	st.Plans[in.PersonID] = plan
	return meal, nil
}

// RemoveMeal drops a meal from the person's plan and recomputes the day's
// totals. Removing the last meal leaves the Day record in place with zero
// totals. Unknown person or meal ids are no-ops.
func RemoveMeal(st *session.State, personID, mealID string) {
	plan, ok := st.Plan(personID)
	if !ok {
		return
	}
	for i, day := range plan.Days {
		for j, meal := range day.Meals {
			if meal.ID != mealID {
				continue
			}
			kept := make([]model.Meal, 0, len(day.Meals)-1)
			kept = append(kept, day.Meals[:j]...)
			kept = append(kept, day.Meals[j+1:]...)
			day.Meals = kept
			plan.Days = append([]model.Day(nil), plan.Days...)
			plan.Days[i] = recomputeDay(day)
			st.Plans[personID] = plan
			return
		}
	}
}

// SetMealQuantity changes a meal's multiplier, recomputing the meal's cached
// nutrition and the day totals. The quantity passes through the same
// coalescing rule as AddMeal.
func SetMealQuantity(st *session.State, personID, mealID string, quantity float64) {
	plan, ok := st.Plan(personID)
	if !ok {
		return
	}
	for i, day := range plan.Days {
		for j, meal := range day.Meals {
			if meal.ID != mealID {
				continue
			}
			meal.Quantity = CoalesceQuantity(quantity)
			meal.Calories = 0
			meal.Protein = 0
			if recipe, ok := st.Recipe(meal.RecipeID); ok {
				meal.Calories = recipe.TotalCalories * meal.Quantity
				meal.Protein = recipe.TotalProtein * meal.Quantity
			}
			day.Meals = append([]model.Meal(nil), day.Meals...)
			day.Meals[j] = meal
			plan.Days = append([]model.Day(nil), plan.Days...)
			plan.Days[i] = recomputeDay(day)
			st.Plans[personID] = plan
			return
		}
	}
}

// ComputeDayTotals sums each meal's cached fields. The day trusts the meal,
// not the recipe: a meal must carry correct fields before it enters a day.
func ComputeDayTotals(meals []model.Meal) model.Totals {
	var totals model.Totals
	for _, meal := range meals {
		totals.Calories += meal.Calories
		totals.Protein += meal.Protein
	}
	return totals
}

// DayByWeekday looks up a person's day by its weekday label.
func DayByWeekday(st *session.State, personID, weekday string) (model.Day, bool) {
	plan, ok := st.Plan(personID)
	if !ok {
		return model.Day{}, false
	}
	for _, day := range plan.Days {
		if day.Weekday == weekday {
			return day, true
		}
	}
	return model.Day{}, false
}

// WeekTotals sums the day totals across the person's whole plan.
func WeekTotals(st *session.State, personID string) model.Totals {
	var totals model.Totals
	plan, ok := st.Plan(personID)
	if !ok {
		return totals
	}
	for _, day := range plan.Days {
		totals.Calories += day.TotalCalories
		totals.Protein += day.TotalProtein
	}
	return totals
}

// MealTypeTotals sums a day's meals of one slot, for the overview grouping.
func MealTypeTotals(day model.Day, mealType model.MealType) model.Totals {
	var totals model.Totals
	for _, meal := range day.Meals {
		if meal.Type == mealType {
			totals.Calories += meal.Calories
			totals.Protein += meal.Protein
		}
	}
	return totals
}

func recomputeDay(day model.Day) model.Day {
	totals := ComputeDayTotals(day.Meals)
	day.TotalCalories = totals.Calories
	day.TotalProtein = totals.Protein
	return day
}

// refreshMealsForRecipe resyncs cached meal nutrition after the recipe's
// totals moved, then recomputes the affected day totals.
func refreshMealsForRecipe(st *session.State, recipeID string) {
	recipe, hasRecipe := st.Recipe(recipeID)
	for personID, plan := range st.Plans {
		changed := false
		days := append([]model.Day(nil), plan.Days...)
		for i, day := range days {
			touched := false
			meals := append([]model.Meal(nil), day.Meals...)
			for j, meal := range meals {
				if meal.RecipeID != recipeID {
					continue
				}
				quantity := CoalesceQuantity(meal.Quantity)
				meal.Calories = 0
				meal.Protein = 0
				if hasRecipe {
					meal.Calories = recipe.TotalCalories * quantity
					meal.Protein = recipe.TotalProtein * quantity
				}
				meals[j] = meal
				touched = true
			}
			if touched {
				day.Meals = meals
				days[i] = recomputeDay(day)
				changed = true
			}
		}
		if changed {
			plan.Days = days
			st.Plans[personID] = plan
		}
	}
}
