package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

type PersonInput struct {
	Name  string
	Email string
}

// CreatePerson adds a person together with their empty meal plan; the two
// are created and deleted as a pair.
func CreatePerson(st *session.State, in PersonInput) (model.Person, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Person{}, fmt.Errorf("person name is required")
	}
	person := model.Person{
		ID:        session.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: time.Now(),
	}
	st.People[person.ID] = person
	st.Plans[person.ID] = model.MealPlan{PersonID: person.ID}
	return person, nil
}

// UpdatePerson replaces name and email; unknown ids are a no-op.
func UpdatePerson(st *session.State, id string, in PersonInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("person name is required")
	}
	person, ok := st.Person(id)
	if !ok {
		return nil
	}
	person.Name = strings.TrimSpace(in.Name)
	person.Email = strings.TrimSpace(in.Email)
	st.People[id] = person
	return nil
}

// DeletePerson removes the person along with their plan and shopping list.
func DeletePerson(st *session.State, id string) {
	delete(st.People, id)
	delete(st.Plans, id)
	delete(st.ShoppingLists, id)
}

// SetGoals attaches nutrition targets to a person. All four targets must be
// non-negative; goals are optional and absent until set.
func SetGoals(st *session.State, personID string, goals model.NutritionGoals) error {
	if err := validateNonNegativeFloat("daily calories", goals.DailyCalories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("daily protein", goals.DailyProtein); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("weekly calories", goals.WeeklyCalories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("weekly protein", goals.WeeklyProtein); err != nil {
		return err
	}
	person, ok := st.Person(personID)
	if !ok {
		return nil
	}
	person.Goals = &goals
	st.People[personID] = person
	return nil
}

// ResolvePerson finds a person by id or (case-insensitive) name, for use by
// the command surface.
func ResolvePerson(st *session.State, idOrName string) (model.Person, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return model.Person{}, fmt.Errorf("person identifier is required")
	}
	if person, ok := st.Person(idOrName); ok {
		return person, nil
	}
	want := normalizeName(idOrName)
	for _, person := range st.People {
		if normalizeName(person.Name) == want {
			return person, nil
		}
	}
	return model.Person{}, fmt.Errorf("person %q not found", idOrName)
}
