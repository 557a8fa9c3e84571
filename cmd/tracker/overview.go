package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

var overviewPerson string

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show one person's weekly plan with day and meal-slot totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			person, err := service.ResolvePerson(st, personArg(overviewPerson))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Weekly plan for %s\n", person.Name)
			for _, weekday := range model.Weekdays() {
				day, ok := service.DayByWeekday(st, person.ID, weekday)
				if !ok {
					continue
				}
				fmt.Fprintf(out, "%s: %.1f kcal | %.1fg protein\n", weekday, day.TotalCalories, day.TotalProtein)
				for _, mealType := range model.MealTypes() {
					slot := service.MealTypeTotals(day, mealType)
					first := true
					for _, meal := range day.Meals {
						if meal.Type != mealType {
							continue
						}
						if first {
							fmt.Fprintf(out, "  %s (%.1f kcal, %.1fg):\n", mealType.Label(), slot.Calories, slot.Protein)
							first = false
						}
						name := meal.RecipeID
						if recipe, ok := st.Recipe(meal.RecipeID); ok {
							name = recipe.Name
						}
						suffix := ""
						if meal.Quantity != 1 {
							suffix = fmt.Sprintf(" x%s", formatQuantity(meal.Quantity))
						}
						fmt.Fprintf(out, "    %s%s: %.1f kcal, %.1fg protein\n", name, suffix, meal.Calories, meal.Protein)
					}
				}
			}
			week := service.WeekTotals(st, person.ID)
			fmt.Fprintf(out, "Week: %.1f kcal | %.1fg protein\n", week.Calories, week.Protein)
			fmt.Fprintf(out, "Daily average: %.1f kcal | %.1fg protein\n", week.Calories/7, week.Protein/7)
			return nil
		})
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Evaluate goal progress for one person or everyone",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			out := cmd.OutOrStdout()
			people := st.PeopleByName()
			if overviewPerson != "" {
				person, err := service.ResolvePerson(st, overviewPerson)
				if err != nil {
					return err
				}
				people = []model.Person{person}
			}
			fmt.Fprintln(out, "NAME\tWEEK KCAL\tDAILY AVG\tDAILY KCAL %\tDAILY PROTEIN %\tSTATUS")
			for _, person := range people {
				p := service.EvaluateProgress(st, person.ID)
				fmt.Fprintf(out, "%s\t%.1f\t%.1f\t%.1f%% (%s)\t%.1f%% (%s)\t%s\n",
					person.Name,
					p.WeekTotals.Calories,
					p.DailyAverage.Calories,
					p.DailyCalories, service.TierFor(p.DailyCalories),
					p.DailyProtein, service.TierFor(p.DailyProtein),
					p.Status,
				)
			}
			return nil
		})
	},
}

// personArg falls back to the configured default person when the flag is
// unset.
func personArg(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Person
}

func init() {
	rootCmd.AddCommand(overviewCmd, progressCmd)
	overviewCmd.Flags().StringVar(&overviewPerson, "person", "", "Person name or id")
	progressCmd.Flags().StringVar(&overviewPerson, "person", "", "Person name or id (default: everyone)")
}
