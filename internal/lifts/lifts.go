// Package lifts reduces the raw max-test history into current lift state.
package lifts

import (
	"sort"

	"github.com/claude/tb3/internal/calc"
	"github.com/claude/tb3/internal/models"
)

// Current derives one entry per distinct lift from the test history: the
// latest test wins (ties broken by heavier weight), the 1RM comes from the
// Epley estimate, and the working max follows the profile's max type. The
// result is sorted by lift name.
func Current(data *models.AppData) []models.DerivedLiftEntry {
	if data == nil {
		return []models.DerivedLiftEntry{}
	}

	latest := map[string]models.OneRepMaxTest{}
	for _, test := range data.MaxTestHistory {
		prev, ok := latest[test.LiftName]
		if !ok || test.Date > prev.Date || (test.Date == prev.Date && test.Weight > prev.Weight) {
			latest[test.LiftName] = test
		}
	}

	useTrainingMax := data.Profile == nil || data.Profile.MaxType == "training"

	entries := make([]models.DerivedLiftEntry, 0, len(latest))
	for name, test := range latest {
		oneRM := calc.OneRepMax(test.Weight, test.Reps)
		workingMax := oneRM
		if useTrainingMax {
			workingMax = calc.TrainingMax(oneRM)
		}
		entries = append(entries, models.DerivedLiftEntry{
			Name:         name,
			Weight:       test.Weight,
			Reps:         test.Reps,
			OneRepMax:    oneRM,
			WorkingMax:   workingMax,
			IsBodyweight: name == models.BodyweightLift,
			TestDate:     test.Date,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
