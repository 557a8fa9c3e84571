package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List recipes with derived nutrition totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tPROTEIN\tINGREDIENTS")
			for _, recipe := range st.RecipesByName() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%.1f\t%d\n", recipe.Name, recipe.TotalCalories, recipe.TotalProtein, len(recipe.Ingredients))
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <recipe>",
	Short: "Show one recipe's ingredient list and totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			recipe, err := service.ResolveRecipe(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recipe: %s\n", recipe.Name)
			for _, ri := range recipe.Ingredients {
				ing, ok := st.Ingredient(ri.IngredientID)
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s%s\n", ing.Name, formatQuantity(ri.Quantity), ing.Unit)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.1f kcal | %.1fg protein\n", recipe.TotalCalories, recipe.TotalProtein)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
	recipesCmd.AddCommand(recipeShowCmd)
}
