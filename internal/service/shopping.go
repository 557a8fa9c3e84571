package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

// ScopeAll addresses every person's shopping list at once. Any other scope
// value is treated as a single person id.
const ScopeAll = "all"

// ManualProvenance marks items added by hand rather than derived from a plan.
const ManualProvenance = "Manually added"

// RegenerateShoppingList expands the person's weekly plan into per-ingredient
// requirements and REPLACES their shopping list wholesale: prior manual
// edits and checked state are discarded, never merged. Each recipe
// ingredient contributes quantity * coalesced meal multiplier; repeats of an
// ingredient across meals, recipes, and days sum up, and the contributing
// recipe names accumulate as provenance. Returns false when the person has
// no plan.
func RegenerateShoppingList(st *session.State, personID string) (model.ShoppingList, bool) {
	plan, ok := st.Plan(personID)
	if !ok {
		return model.ShoppingList{}, false
	}

	index := make(map[string]int)
	items := make([]model.ShoppingListItem, 0)
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			recipe, ok := st.Recipe(meal.RecipeID)
			if !ok {
				continue
			}
			multiplier := CoalesceQuantity(meal.Quantity)
			for _, ri := range recipe.Ingredients {
				ingredient, ok := st.Ingredient(ri.IngredientID)
				if !ok {
					continue
				}
				required := ri.Quantity * multiplier
				if i, seen := index[ri.IngredientID]; seen {
					items[i].TotalQuantity += required
					items[i].Recipes = unionRecipes(items[i].Recipes, recipe.Name)
					continue
				}
				index[ri.IngredientID] = len(items)
				items = append(items, model.ShoppingListItem{
					IngredientID:   ri.IngredientID,
					IngredientName: ingredient.Name,
					TotalQuantity:  required,
					Unit:           ingredient.Unit,
					Recipes:        []string{recipe.Name},
					Checked:        false,
				})
			}
		}
	}

	now := time.Now()
	list := model.ShoppingList{PersonID: personID, Items: items, CreatedAt: now, UpdatedAt: now}
	st.ShoppingLists[personID] = list
	return list, true
}

// ConsolidateShoppingLists merges the per-person lists in scope into one
// view: quantities add, provenance unions, and an item reads checked only
// when every contributing copy is checked, so partial completion stays
// visible as unchecked. The result is recomputed on demand and never stored.
func ConsolidateShoppingLists(st *session.State, scope string) []model.ShoppingListItem {
	index := make(map[string]int)
	merged := make([]model.ShoppingListItem, 0)
	for _, list := range listsInScope(st, scope) {
		for _, item := range list.Items {
			if i, seen := index[item.IngredientID]; seen {
				merged[i].TotalQuantity += item.TotalQuantity
				for _, name := range item.Recipes {
					merged[i].Recipes = unionRecipes(merged[i].Recipes, name)
				}
				merged[i].Checked = merged[i].Checked && item.Checked
				continue
			}
			index[item.IngredientID] = len(merged)
			copied := item
			copied.Recipes = append([]string(nil), item.Recipes...)
			merged = append(merged, copied)
		}
	}
	return merged
}

// ToggleShoppingItem flips the consolidated checked state of an ingredient
// and writes the new state back to every in-scope list containing it.
func ToggleShoppingItem(st *session.State, scope, ingredientID string) {
	var current *bool
	for _, item := range ConsolidateShoppingLists(st, scope) {
		if item.IngredientID == ingredientID {
			checked := item.Checked
			current = &checked
			break
		}
	}
	if current == nil {
		return
	}
	next := !*current
	mutateListsInScope(st, scope, func(list model.ShoppingList) (model.ShoppingList, bool) {
		changed := false
		items := append([]model.ShoppingListItem(nil), list.Items...)
		for i, item := range items {
			if item.IngredientID == ingredientID {
				items[i].Checked = next
				changed = true
			}
		}
		list.Items = items
		return list, changed
	})
}

// SetShoppingItemQuantity sets the quantity of an ingredient on every
// in-scope list that carries it. Non-positive quantities are a no-op; the
// value is not apportioned between lists.
func SetShoppingItemQuantity(st *session.State, scope, ingredientID string, quantity float64) {
	if quantity <= 0 {
		return
	}
	mutateListsInScope(st, scope, func(list model.ShoppingList) (model.ShoppingList, bool) {
		changed := false
		items := append([]model.ShoppingListItem(nil), list.Items...)
		for i, item := range items {
			if item.IngredientID == ingredientID {
				items[i].TotalQuantity = quantity
				changed = true
			}
		}
		list.Items = items
		return list, changed
	})
}

// RemoveShoppingItem deletes an ingredient from every in-scope list.
func RemoveShoppingItem(st *session.State, scope, ingredientID string) {
	mutateListsInScope(st, scope, func(list model.ShoppingList) (model.ShoppingList, bool) {
		kept := make([]model.ShoppingListItem, 0, len(list.Items))
		for _, item := range list.Items {
			if item.IngredientID != ingredientID {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(list.Items) {
			return list, false
		}
		list.Items = kept
		return list, true
	})
}

// AddShoppingItem adds an ad-hoc quantity of a catalog ingredient to every
// in-scope list record: existing entries accumulate, missing entries are
// appended with manual provenance. Unknown ingredients and non-positive
// quantities are no-ops.
func AddShoppingItem(st *session.State, scope, ingredientID string, quantity float64) {
	if quantity <= 0 {
		return
	}
	ingredient, ok := st.Ingredient(ingredientID)
	if !ok {
		return
	}
	mutateListsInScope(st, scope, func(list model.ShoppingList) (model.ShoppingList, bool) {
		items := append([]model.ShoppingListItem(nil), list.Items...)
		for i, item := range items {
			if item.IngredientID == ingredientID {
				items[i].TotalQuantity += quantity
				list.Items = items
				return list, true
			}
		}
		list.Items = append(items, model.ShoppingListItem{
			IngredientID:   ingredientID,
			IngredientName: ingredient.Name,
			TotalQuantity:  quantity,
			Unit:           ingredient.Unit,
			Recipes:        []string{ManualProvenance},
			Checked:        false,
		})
		return list, true
	})
}

// ClearShoppingList removes one person's list record entirely.
func ClearShoppingList(st *session.State, personID string) {
	delete(st.ShoppingLists, personID)
}

// ClearAllShoppingLists removes every list record, not just their items.
func ClearAllShoppingLists(st *session.State) {
	st.ShoppingLists = make(map[string]model.ShoppingList)
}

// ShoppingListStats summarizes a set of items for display.
type ShoppingListStats struct {
	TotalItems    int
	CheckedItems  int
	TotalQuantity float64
}

func StatsFor(items []model.ShoppingListItem) ShoppingListStats {
	var stats ShoppingListStats
	stats.TotalItems = len(items)
	for _, item := range items {
		if item.Checked {
			stats.CheckedItems++
		}
		stats.TotalQuantity += item.TotalQuantity
	}
	return stats
}

// RenderShoppingList serializes items one per line as
// "<mark> <name> - <quantity><unit>" with a check mark for checked items and
// a circle otherwise. The projection is deterministic and carries no header
// or trailing metadata.
func RenderShoppingList(items []model.ShoppingListItem, uncheckedOnly bool) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if uncheckedOnly && item.Checked {
			continue
		}
		mark := "○"
		if item.Checked {
			mark = "✓"
		}
		quantity := strconv.FormatFloat(item.TotalQuantity, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("%s %s - %s%s", mark, item.IngredientName, quantity, item.Unit))
	}
	return strings.Join(lines, "\n")
}

// ExportFileName names the downloaded list after its scope.
func ExportFileName(st *session.State, scope string) string {
	if scope == ScopeAll {
		return "global-shopping-list.txt"
	}
	if person, ok := st.Person(scope); ok {
		return person.Name + "-shopping-list.txt"
	}
	return scope + "-shopping-list.txt"
}

// listsInScope yields the shopping lists an operation addresses, in the
// stable person-name order so consolidation output is deterministic.
func listsInScope(st *session.State, scope string) []model.ShoppingList {
	lists := make([]model.ShoppingList, 0, len(st.ShoppingLists))
	for _, person := range st.PeopleByName() {
		if scope != ScopeAll && person.ID != scope {
			continue
		}
		if list, ok := st.ShoppingList(person.ID); ok {
			lists = append(lists, list)
		}
	}
	return lists
}

func mutateListsInScope(st *session.State, scope string, apply func(model.ShoppingList) (model.ShoppingList, bool)) {
	for _, list := range listsInScope(st, scope) {
		updated, changed := apply(list)
		if changed {
			updated.UpdatedAt = time.Now()
			st.ShoppingLists[updated.PersonID] = updated
		}
	}
}

func unionRecipes(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}
