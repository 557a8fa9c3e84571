package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List the ingredient catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL/100\tPROTEIN/100\tUNIT")
			for _, ing := range st.IngredientsByName() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%.1f\t%s\n", ing.Name, ing.CaloriesPer100, ing.ProteinPer100, ing.Unit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ingredientsCmd)
}
