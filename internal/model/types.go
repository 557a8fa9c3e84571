package model

import "time"

// Unit is the measurement unit an ingredient is quoted in. Densities are
// always per 100 units of the ingredient's own unit.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
	UnitPieces      Unit = "pieces"
)

func ValidUnit(u Unit) bool {
	switch u {
	case UnitGrams, UnitMilliliters, UnitPieces:
		return true
	}
	return false
}

type Ingredient struct {
	ID             string
	Name           string
	CaloriesPer100 float64
	ProteinPer100  float64
	Unit           Unit
}

// RecipeIngredient references an ingredient by id. The reference is weak:
// if the ingredient is deleted from the catalog the entry is dropped.
type RecipeIngredient struct {
	IngredientID string
	Quantity     float64
}

// Recipe caches TotalCalories/TotalProtein derived from its ingredient list.
// The cached values are recomputed on every mutation of Ingredients and are
// never edited independently.
type Recipe struct {
	ID            string
	Name          string
	Ingredients   []RecipeIngredient
	TotalCalories float64
	TotalProtein  float64
}

type MealType string

const (
	MealBreakfast    MealType = "breakfast"
	MealMorningSnack MealType = "morning_snack"
	MealLunch        MealType = "lunch"
	MealEveningSnack MealType = "evening_snack"
	MealDinner       MealType = "dinner"
)

// MealTypes returns the five meal slots in display order.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealMorningSnack, MealLunch, MealEveningSnack, MealDinner}
}

func ValidMealType(t MealType) bool {
	for _, mt := range MealTypes() {
		if t == mt {
			return true
		}
	}
	return false
}

func (t MealType) Label() string {
	switch t {
	case MealBreakfast:
		return "Breakfast"
	case MealMorningSnack:
		return "Morning Snack"
	case MealLunch:
		return "Lunch"
	case MealEveningSnack:
		return "Evening Snack"
	case MealDinner:
		return "Dinner"
	}
	return string(t)
}

// Meal caches Calories/Protein as recipe totals times the quantity
// multiplier, refreshed whenever the recipe totals or the quantity change.
type Meal struct {
	ID       string
	Type     MealType
	RecipeID string
	Quantity float64
	Calories float64
	Protein  float64
}

// Day is identified by its weekday label within a plan; there is at most one
// Day per weekday per person. Totals are the sum of the contained meals'
// cached fields.
type Day struct {
	ID            string
	Weekday       string
	Meals         []Meal
	TotalCalories float64
	TotalProtein  float64
}

// Weekdays returns the seven day labels in week order.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

func ValidWeekday(label string) bool {
	for _, day := range Weekdays() {
		if day == label {
			return true
		}
	}
	return false
}

type Totals struct {
	Calories float64
	Protein  float64
}

func (t Totals) Add(other Totals) Totals {
	return Totals{Calories: t.Calories + other.Calories, Protein: t.Protein + other.Protein}
}

type NutritionGoals struct {
	DailyCalories  float64
	DailyProtein   float64
	WeeklyCalories float64
	WeeklyProtein  float64
}

type Person struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	Goals     *NutritionGoals
}

// MealPlan holds up to seven days, one per weekday label, for one person.
type MealPlan struct {
	PersonID string
	Days     []Day
}

type ShoppingListItem struct {
	IngredientID   string
	IngredientName string
	TotalQuantity  float64
	Unit           Unit
	Recipes        []string
	Checked        bool
}

type ShoppingList struct {
	PersonID  string
	Items     []ShoppingListItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
