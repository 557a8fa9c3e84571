package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List tracked people and their goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tEMAIL\tDAILY KCAL\tDAILY PROTEIN")
			for _, person := range st.PeopleByName() {
				if person.Goals == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t-\t-\n", person.Name, person.Email)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.0fg\n", person.Name, person.Email, person.Goals.DailyCalories, person.Goals.DailyProtein)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(peopleCmd)
}
