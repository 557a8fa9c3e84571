// Package session holds all state for one in-memory planning session.
// Collections are arenas keyed by id; every cross-entity link is an id
// resolved by lookup at use time, so a dangling reference simply fails the
// lookup instead of leaving an owning pointer behind.
package session

import (
	"sort"

	"github.com/google/uuid"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
)

type State struct {
	Ingredients   map[string]model.Ingredient
	Recipes       map[string]model.Recipe
	People        map[string]model.Person
	Plans         map[string]model.MealPlan     // keyed by person id
	ShoppingLists map[string]model.ShoppingList // keyed by person id
}

func New() *State {
	return &State{
		Ingredients:   make(map[string]model.Ingredient),
		Recipes:       make(map[string]model.Recipe),
		People:        make(map[string]model.Person),
		Plans:         make(map[string]model.MealPlan),
		ShoppingLists: make(map[string]model.ShoppingList),
	}
}

// NewID mints an id for any entity stored in the session.
func NewID() string {
	return uuid.NewString()
}

func (s *State) Ingredient(id string) (model.Ingredient, bool) {
	ing, ok := s.Ingredients[id]
	return ing, ok
}

func (s *State) Recipe(id string) (model.Recipe, bool) {
	r, ok := s.Recipes[id]
	return r, ok
}

func (s *State) Person(id string) (model.Person, bool) {
	p, ok := s.People[id]
	return p, ok
}

func (s *State) Plan(personID string) (model.MealPlan, bool) {
	plan, ok := s.Plans[personID]
	return plan, ok
}

func (s *State) ShoppingList(personID string) (model.ShoppingList, bool) {
	list, ok := s.ShoppingLists[personID]
	return list, ok
}

// IngredientsByName lists the catalog sorted by name.
func (s *State) IngredientsByName() []model.Ingredient {
	items := make([]model.Ingredient, 0, len(s.Ingredients))
	for _, ing := range s.Ingredients {
		items = append(items, ing)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func (s *State) RecipesByName() []model.Recipe {
	items := make([]model.Recipe, 0, len(s.Recipes))
	for _, r := range s.Recipes {
		items = append(items, r)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func (s *State) PeopleByName() []model.Person {
	items := make([]model.Person, 0, len(s.People))
	for _, p := range s.People {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
