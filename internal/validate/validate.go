// Package validate checks application state for internal consistency and
// gates externally supplied backup files before they can touch any state.
package validate

import (
	"fmt"

	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/templates"
)

// Severity orders validation outcomes from harmless to unusable.
type Severity string

const (
	SeverityOK          Severity = "ok"
	SeverityWarning     Severity = "warning"
	SeverityRecoverable Severity = "recoverable"
	SeverityFatal       Severity = "fatal"
)

func (s Severity) rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityRecoverable:
		return 2
	case SeverityFatal:
		return 3
	default:
		return 0
	}
}

// Result is the outcome of an app-data consistency check.
type Result struct {
	Severity Severity `json:"severity"`
	Errors   []string `json:"errors"`
}

func (r *Result) add(s Severity, msg string) {
	r.Errors = append(r.Errors, msg)
	if s.rank() > r.Severity.rank() {
		r.Severity = s
	}
}

// AppData checks already-loaded application state. Warnings and recoverable
// findings report problems without rejecting the data; only structurally
// unusable state is fatal.
func AppData(data *models.AppData) Result {
	res := Result{Severity: SeverityOK, Errors: []string{}}

	if data == nil {
		res.add(SeverityFatal, "application data is missing")
		return res
	}
	if data.Profile == nil {
		res.add(SeverityFatal, "application data is missing profile")
		return res
	}

	if data.ActiveProgram != nil && templates.Get(data.ActiveProgram.TemplateID) == nil {
		res.add(SeverityRecoverable, fmt.Sprintf("Unknown template: %s", data.ActiveProgram.TemplateID))
	}

	for _, test := range data.MaxTestHistory {
		if !models.KnownLifts[test.LiftName] {
			res.add(SeverityWarning, fmt.Sprintf("Unknown lift: %s", test.LiftName))
		}
		if test.Weight <= models.MinTestWeight || test.Weight > models.MaxTestWeight {
			res.add(SeverityWarning, fmt.Sprintf("Weight out of range: %v in test %s", test.Weight, test.ID))
		}
		if test.Reps < models.MinTestReps || test.Reps > models.MaxTestReps {
			res.add(SeverityWarning, fmt.Sprintf("Reps out of range: %d in test %s", test.Reps, test.ID))
		}
	}

	seen := map[string]bool{}
	for _, s := range data.SessionHistory {
		if seen[s.ID] {
			res.add(SeverityWarning, fmt.Sprintf("Duplicate session ID: %s", s.ID))
		}
		seen[s.ID] = true
	}
	seen = map[string]bool{}
	for _, test := range data.MaxTestHistory {
		if seen[test.ID] {
			res.add(SeverityWarning, fmt.Sprintf("Duplicate max test ID: %s", test.ID))
		}
		seen[test.ID] = true
	}

	return res
}
