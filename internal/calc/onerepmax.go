// Package calc implements the one-rep-max math every other component builds
// on: the Epley estimate, training-max reduction, and increment rounding.
package calc

import "math"

// TableRows are the percentages shown in a strength standards table.
var TableRows = []int{65, 70, 75, 80, 85, 90, 95, 100}

// OneRepMax estimates a one-rep max from a test set using the Epley formula
// weight * (1 + reps/30). Returns 0 for non-positive weight or reps. At
// reps = 1 the formula yields the weight unchanged.
func OneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return weight * (1 + float64(reps)/30)
}

// TrainingMax is the 90% working ceiling most templates prescribe.
func TrainingMax(oneRepMax float64) float64 {
	return oneRepMax * 0.9
}

// RoundWeight snaps a weight to the nearest multiple of increment, half up.
// A non-positive increment leaves the weight untouched.
func RoundWeight(weight, increment float64) float64 {
	if increment <= 0 {
		return weight
	}
	return math.Round(weight/increment) * increment
}

// PercentageWeight is the working weight for a session: percent of the
// working max, snapped to the rounding increment.
func PercentageWeight(workingMax float64, percent int, increment float64) float64 {
	return RoundWeight(workingMax*float64(percent)/100, increment)
}

// TableRow is one line of a percentage table.
type TableRow struct {
	Percentage int     `json:"percentage"`
	Weight     float64 `json:"weight"`
}

// PercentageTable returns the 65–100% table for a working max. All weights
// are 0 when the working max is 0.
func PercentageTable(workingMax, increment float64) []TableRow {
	rows := make([]TableRow, 0, len(TableRows))
	for _, p := range TableRows {
		rows = append(rows, TableRow{
			Percentage: p,
			Weight:     PercentageWeight(workingMax, p, increment),
		})
	}
	return rows
}
