package service

import (
	"math"

	"github.com/LauschaNN/calorie-protein-tracker/internal/model"
	"github.com/LauschaNN/calorie-protein-tracker/internal/session"
)

// ProgressPercent reports how far current is toward goal, clamped to
// [0, 100]. A zero goal always reads as zero progress.
func ProgressPercent(current, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return math.Min(current/goal*100, 100)
}

type Tier string

const (
	TierComplete  Tier = "complete"
	TierGood      Tier = "good"
	TierNeedsWork Tier = "needs work"
)

func TierFor(percent float64) Tier {
	switch {
	case percent >= 100:
		return TierComplete
	case percent >= 80:
		return TierGood
	default:
		return TierNeedsWork
	}
}

type Status string

const (
	StatusOnTrack    Status = "on track"
	StatusInProgress Status = "in progress"
	StatusNoGoals    Status = "no goals set"
)

// GoalProgress carries a person's week aggregates and their position against
// each goal threshold.
type GoalProgress struct {
	WeekTotals     model.Totals
	DailyAverage   model.Totals
	DailyCalories  float64
	DailyProtein   float64
	WeeklyCalories float64
	WeeklyProtein  float64
	Status         Status
}

// EvaluateProgress compares a person's planned week against their goals.
// Daily averages always divide the week total by 7; a plan covering fewer
// weekdays is not pro-rated, so a two-day plan under-reports its daily
// average on purpose. The person is on track when both daily percentages
// reach 80; without goals the status is the distinct "no goals set".
func EvaluateProgress(st *session.State, personID string) GoalProgress {
	week := WeekTotals(st, personID)
	progress := GoalProgress{
		WeekTotals:   week,
		DailyAverage: model.Totals{Calories: week.Calories / 7, Protein: week.Protein / 7},
		Status:       StatusNoGoals,
	}

	person, ok := st.Person(personID)
	if !ok || person.Goals == nil {
		return progress
	}
	goals := *person.Goals

	progress.DailyCalories = ProgressPercent(progress.DailyAverage.Calories, goals.DailyCalories)
	progress.DailyProtein = ProgressPercent(progress.DailyAverage.Protein, goals.DailyProtein)
	progress.WeeklyCalories = ProgressPercent(week.Calories, goals.WeeklyCalories)
	progress.WeeklyProtein = ProgressPercent(week.Protein, goals.WeeklyProtein)

	if progress.DailyCalories >= 80 && progress.DailyProtein >= 80 {
		progress.Status = StatusOnTrack
	} else {
		progress.Status = StatusInProgress
	}
	return progress
}
