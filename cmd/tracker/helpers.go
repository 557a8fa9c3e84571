package tracker

import (
	"fmt"
	"strconv"

	"github.com/LauschaNN/calorie-protein-tracker/internal/planfile"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

// withState builds the session for this invocation from the plan document
// (or the built-in sample) and hands it to run. State lives only for the
// process; nothing is written back.
func withState(run func(*session.State) error) error {
	if useSample {
		return run(planfile.Sample())
	}
	if planPath == "" {
		return fmt.Errorf("provide --plan <file> or --sample")
	}
	st, err := planfile.Load(planPath, logger)
	if err != nil {
		return err
	}
	return run(st)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
