package tracker

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LauschaNN/calorie-protein-tracker/internal/app"
)

var (
	planPath  string
	useSample bool

	cfg    app.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "tracker plans weekly meals and nutrition from your terminal",
	Long: "tracker is an in-memory meal planning CLI: it loads a weekly plan document,\n" +
		"derives recipe and day nutrition, evaluates goal progress, and consolidates\n" +
		"shopping lists across people.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = app.LoadConfig()
		logger = app.NewLogger(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&planPath, "plan", "", "Path to a YAML plan document")
	rootCmd.PersistentFlags().BoolVar(&useSample, "sample", false, "Use the built-in sample plan")
}
