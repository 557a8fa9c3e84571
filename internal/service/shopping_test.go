package service_test

import (
	"strings"
	"testing"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

func itemFor(items []model.ShoppingListItem, ingredientID string) (model.ShoppingListItem, bool) {
	for _, item := range items {
		if item.IngredientID == ingredientID {
			return item, true
		}
	}
	return model.ShoppingListItem{}, false
}

// twoRecipeWeek builds a person whose Monday uses chicken in two recipes and
// whose Tuesday repeats one of them at double quantity.
func twoRecipeWeek(t *testing.T, st *session.State) (model.Person, model.Ingredient) {
	t.Helper()
	chicken := addIngredient(t, st, "Chicken Breast", 165, 31)
	rice := addIngredient(t, st, "Brown Rice", 111, 2.6)
	bowl := addRecipe(t, st, "Bowl",
		model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 150},
		model.RecipeIngredient{IngredientID: rice.ID, Quantity: 100},
	)
	stirFry := addRecipe(t, st, "Stir Fry", model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 200})

	person := addPerson(t, st, "John")
	addMeal(t, st, person.ID, "Monday", model.MealLunch, bowl.ID, 1)
	addMeal(t, st, person.ID, "Monday", model.MealDinner, stirFry.ID, 1)
	addMeal(t, st, person.ID, "Tuesday", model.MealLunch, bowl.ID, 2)
	return person, chicken
}

func TestRegenerateGroupsByIngredient(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	person, chicken := twoRecipeWeek(t, st)

	list, ok := service.RegenerateShoppingList(st, person.ID)
	if !ok {
		t.Fatalf("expected a list for a person with a plan")
	}

	// chicken: 150 (bowl) + 200 (stir fry) + 150*2 (bowl at 2x) = 650
	item, ok := itemFor(list.Items, chicken.ID)
	if !ok {
		t.Fatalf("expected a chicken item")
	}
	if !almostEqual(item.TotalQuantity, 650) {
		t.Fatalf("expected 650g of chicken, got %v", item.TotalQuantity)
	}
	if len(item.Recipes) != 2 {
		t.Fatalf("expected provenance {Bowl, Stir Fry}, got %v", item.Recipes)
	}
	if item.Checked {
		t.Fatalf("expected items to start unchecked")
	}
}

func TestRegenerateReplacesWholesale(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	person, chicken := twoRecipeWeek(t, st)

	service.RegenerateShoppingList(st, person.ID)
	service.ToggleShoppingItem(st, person.ID, chicken.ID)
	service.SetShoppingItemQuantity(st, person.ID, chicken.ID, 9999)

	// Regeneration is a rerun of pass 1, not a merge with prior state;
	// manual edits and checked state are gone.
	list, _ := service.RegenerateShoppingList(st, person.ID)
	item, _ := itemFor(list.Items, chicken.ID)
	if item.Checked {
		t.Fatalf("expected checked state discarded on regenerate")
	}
	if !almostEqual(item.TotalQuantity, 650) {
		t.Fatalf("expected quantity rederived to 650, got %v", item.TotalQuantity)
	}
}

func TestRegenerateWithoutPlanIsNoOp(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	if _, ok := service.RegenerateShoppingList(st, "missing"); ok {
		t.Fatalf("expected no list for an unknown person")
	}
}

func TestConsolidateSumsAcrossPeople(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	chicken := addIngredient(t, st, "Chicken Breast", 165, 31)
	bowl := addRecipe(t, st, "Bowl", model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 150})

	john := addPerson(t, st, "John")
	sarah := addPerson(t, st, "Sarah")
	addMeal(t, st, john.ID, "Monday", model.MealLunch, bowl.ID, 1)
	addMeal(t, st, sarah.ID, "Tuesday", model.MealLunch, bowl.ID, 2)
	service.RegenerateShoppingList(st, john.ID)
	service.RegenerateShoppingList(st, sarah.ID)

	merged := service.ConsolidateShoppingLists(st, service.ScopeAll)
	item, ok := itemFor(merged, chicken.ID)
	if !ok {
		t.Fatalf("expected a consolidated chicken item")
	}
	if !almostEqual(item.TotalQuantity, 150+300) {
		t.Fatalf("expected Q1+Q2 = 450, got %v", item.TotalQuantity)
	}
	if item.Checked {
		t.Fatalf("expected unchecked while no copy is checked")
	}

	// Checked reads true only when every contributing copy is checked.
	service.ToggleShoppingItem(st, john.ID, chicken.ID)
	merged = service.ConsolidateShoppingLists(st, service.ScopeAll)
	item, _ = itemFor(merged, chicken.ID)
	if item.Checked {
		t.Fatalf("expected unchecked while one copy is unchecked")
	}
	service.ToggleShoppingItem(st, sarah.ID, chicken.ID)
	merged = service.ConsolidateShoppingLists(st, service.ScopeAll)
	item, _ = itemFor(merged, chicken.ID)
	if !item.Checked {
		t.Fatalf("expected checked once every copy is checked")
	}
}

func TestConsolidateIsPureRecomputation(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	person, chicken := twoRecipeWeek(t, st)
	service.RegenerateShoppingList(st, person.ID)

	first := service.ConsolidateShoppingLists(st, service.ScopeAll)
	second := service.ConsolidateShoppingLists(st, service.ScopeAll)

	a, _ := itemFor(first, chicken.ID)
	b, _ := itemFor(second, chicken.ID)
	if !almostEqual(a.TotalQuantity, b.TotalQuantity) {
		t.Fatalf("consolidating twice changed totals: %v vs %v", a.TotalQuantity, b.TotalQuantity)
	}

	// Mutating the view must not leak into the stored lists.
	first[0].TotalQuantity = 1
	first[0].Recipes[0] = "mutated"
	list, _ := st.ShoppingList(person.ID)
	if almostEqual(list.Items[0].TotalQuantity, 1) || list.Items[0].Recipes[0] == "mutated" {
		t.Fatalf("consolidated view aliases the stored list")
	}
}

func TestBroadcastEditsApplyToEveryListInScope(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	chicken := addIngredient(t, st, "Chicken Breast", 165, 31)
	bowl := addRecipe(t, st, "Bowl", model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 150})

	john := addPerson(t, st, "John")
	sarah := addPerson(t, st, "Sarah")
	addMeal(t, st, john.ID, "Monday", model.MealLunch, bowl.ID, 1)
	addMeal(t, st, sarah.ID, "Monday", model.MealLunch, bowl.ID, 1)
	service.RegenerateShoppingList(st, john.ID)
	service.RegenerateShoppingList(st, sarah.ID)

	service.ToggleShoppingItem(st, service.ScopeAll, chicken.ID)
	for _, personID := range []string{john.ID, sarah.ID} {
		list, _ := st.ShoppingList(personID)
		item, _ := itemFor(list.Items, chicken.ID)
		if !item.Checked {
			t.Fatalf("expected toggle broadcast to person %s", personID)
		}
	}

	// Quantity edits set the same value on every in-scope copy.
	service.SetShoppingItemQuantity(st, service.ScopeAll, chicken.ID, 500)
	for _, personID := range []string{john.ID, sarah.ID} {
		list, _ := st.ShoppingList(personID)
		item, _ := itemFor(list.Items, chicken.ID)
		if !almostEqual(item.TotalQuantity, 500) {
			t.Fatalf("expected quantity 500 for person %s, got %v", personID, item.TotalQuantity)
		}
	}

	service.RemoveShoppingItem(st, service.ScopeAll, chicken.ID)
	for _, personID := range []string{john.ID, sarah.ID} {
		list, _ := st.ShoppingList(personID)
		if len(list.Items) != 0 {
			t.Fatalf("expected removal broadcast to person %s", personID)
		}
	}
}

func TestSingleScopeEditLeavesOthersAlone(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	chicken := addIngredient(t, st, "Chicken Breast", 165, 31)
	bowl := addRecipe(t, st, "Bowl", model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 150})

	john := addPerson(t, st, "John")
	sarah := addPerson(t, st, "Sarah")
	addMeal(t, st, john.ID, "Monday", model.MealLunch, bowl.ID, 1)
	addMeal(t, st, sarah.ID, "Monday", model.MealLunch, bowl.ID, 1)
	service.RegenerateShoppingList(st, john.ID)
	service.RegenerateShoppingList(st, sarah.ID)

	service.ToggleShoppingItem(st, john.ID, chicken.ID)

	johnList, _ := st.ShoppingList(john.ID)
	sarahList, _ := st.ShoppingList(sarah.ID)
	johnItem, _ := itemFor(johnList.Items, chicken.ID)
	sarahItem, _ := itemFor(sarahList.Items, chicken.ID)
	if !johnItem.Checked || sarahItem.Checked {
		t.Fatalf("expected only John's copy toggled")
	}
}

func TestAddShoppingItemSumsOrAppends(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	chicken := addIngredient(t, st, "Chicken Breast", 165, 31)
	almonds := addIngredient(t, st, "Almonds", 579, 21)
	bowl := addRecipe(t, st, "Bowl", model.RecipeIngredient{IngredientID: chicken.ID, Quantity: 150})

	person := addPerson(t, st, "John")
	addMeal(t, st, person.ID, "Monday", model.MealLunch, bowl.ID, 1)
	service.RegenerateShoppingList(st, person.ID)

	// Existing entry: quantities accumulate.
	service.AddShoppingItem(st, person.ID, chicken.ID, 50)
	list, _ := st.ShoppingList(person.ID)
	item, _ := itemFor(list.Items, chicken.ID)
	if !almostEqual(item.TotalQuantity, 200) {
		t.Fatalf("expected 150+50, got %v", item.TotalQuantity)
	}

	// Missing entry: appended with manual provenance.
	service.AddShoppingItem(st, person.ID, almonds.ID, 25)
	list, _ = st.ShoppingList(person.ID)
	item, ok := itemFor(list.Items, almonds.ID)
	if !ok {
		t.Fatalf("expected an almonds item")
	}
	if len(item.Recipes) != 1 || item.Recipes[0] != service.ManualProvenance {
		t.Fatalf("expected manual provenance, got %v", item.Recipes)
	}

	// Unknown ingredients and non-positive quantities are no-ops.
	service.AddShoppingItem(st, person.ID, "missing", 10)
	service.AddShoppingItem(st, person.ID, chicken.ID, 0)
	list, _ = st.ShoppingList(person.ID)
	if len(list.Items) != 2 {
		t.Fatalf("expected list unchanged, got %+v", list.Items)
	}
}

func TestClearShoppingLists(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	person, _ := twoRecipeWeek(t, st)
	service.RegenerateShoppingList(st, person.ID)

	service.ClearShoppingList(st, person.ID)
	if _, ok := st.ShoppingList(person.ID); ok {
		t.Fatalf("expected the list record removed")
	}

	service.RegenerateShoppingList(st, person.ID)
	service.ClearAllShoppingLists(st)
	if len(st.ShoppingLists) != 0 {
		t.Fatalf("expected every list record removed")
	}
}

func TestRenderShoppingListFormat(t *testing.T) {
	t.Parallel()
	items := []model.ShoppingListItem{
		{IngredientName: "Chicken Breast", TotalQuantity: 650, Unit: model.UnitGrams, Checked: false},
		{IngredientName: "Milk", TotalQuantity: 250.5, Unit: model.UnitMilliliters, Checked: true},
	}
	got := service.RenderShoppingList(items, false)
	want := "○ Chicken Breast - 650g\n✓ Milk - 250.5ml"
	if got != want {
		t.Fatalf("render mismatch:\n got: %q\nwant: %q", got, want)
	}

	unchecked := service.RenderShoppingList(items, true)
	if strings.Contains(unchecked, "Milk") {
		t.Fatalf("expected checked items filtered out, got %q", unchecked)
	}
}

func TestExportFileName(t *testing.T) {
	t.Parallel()
	st := newTestState(t)
	person := addPerson(t, st, "John Smith")

	if got := service.ExportFileName(st, service.ScopeAll); got != "global-shopping-list.txt" {
		t.Fatalf("unexpected global file name %q", got)
	}
	if got := service.ExportFileName(st, person.ID); got != "John Smith-shopping-list.txt" {
		t.Fatalf("unexpected person file name %q", got)
	}
}
