package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/service"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

var (
	shoppingPerson    string
	shoppingUnchecked bool
	shoppingOutDir    string
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Generate and consolidate shopping lists",
}

var shoppingViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the consolidated shopping list for one person or everyone",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			scope, err := regenerateScope(st)
			if err != nil {
				return err
			}
			items := service.ConsolidateShoppingLists(st, scope)
			stats := service.StatsFor(items)
			fmt.Fprintln(cmd.OutOrStdout(), service.RenderShoppingList(items, shoppingUnchecked))
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d items | %d checked | %s total quantity\n",
				stats.TotalItems, stats.CheckedItems, formatQuantity(stats.TotalQuantity))
			return nil
		})
	},
}

var shoppingExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the shopping list as a plain text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(st *session.State) error {
			scope, err := regenerateScope(st)
			if err != nil {
				return err
			}
			items := service.ConsolidateShoppingLists(st, scope)
			text := service.RenderShoppingList(items, shoppingUnchecked)

			dir := shoppingOutDir
			if dir == "" {
				dir = cfg.ExportDir
			}
			path := filepath.Join(dir, service.ExportFileName(st, scope))
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write shopping list: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		})
	},
}

// regenerateScope rebuilds the per-person lists this invocation needs and
// returns the scope to consolidate over. The artificial pause is UI
// feedback only and is off unless configured.
func regenerateScope(st *session.State) (string, error) {
	scope := service.ScopeAll
	if name := personArg(shoppingPerson); name != "" && name != service.ScopeAll {
		person, err := service.ResolvePerson(st, name)
		if err != nil {
			return "", err
		}
		scope = person.ID
	}

	if cfg.GenerateDelay > 0 {
		logger.Info("generating shopping lists...")
		time.Sleep(cfg.GenerateDelay)
	}
	for _, person := range st.PeopleByName() {
		if scope != service.ScopeAll && person.ID != scope {
			continue
		}
		if _, ok := service.RegenerateShoppingList(st, person.ID); ok {
			logger.WithField("person", person.Name).Debug("shopping list regenerated")
		}
	}
	return scope, nil
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingViewCmd, shoppingExportCmd)
	shoppingCmd.PersistentFlags().StringVar(&shoppingPerson, "person", "", "Person name or id (default: all)")
	shoppingCmd.PersistentFlags().BoolVar(&shoppingUnchecked, "unchecked", false, "Only unchecked items")
	shoppingExportCmd.Flags().StringVar(&shoppingOutDir, "out", "", "Output directory (default from config)")
}
