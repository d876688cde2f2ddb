// Package schedule turns an active program, derived lifts, and the user's
// profile into the fully computed training schedule: every week, session,
// and exercise with target weight and plate breakdown.
package schedule

import (
	"fmt"

	"github.com/claude/tb3/internal/calc"
	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/plates"
	"github.com/claude/tb3/internal/templates"
)

// Inventories carries the two plate inventories a schedule loads against.
type Inventories struct {
	Barbell models.PlateInventory
	Belt    models.PlateInventory
}

// Exercise is one lift in one session with its computed load.
type Exercise struct {
	LiftName       string              `json:"liftName"`
	TargetWeight   float64             `json:"targetWeight"`
	Achievable     bool                `json:"achievable"`
	PlateBreakdown plates.Result       `json:"plateBreakdown"`
	IsBodyweight   bool                `json:"isBodyweight"`
	SetsReps       *templates.SetsReps `json:"setsReps,omitempty"`
}

// Session is one training day within a week.
type Session struct {
	SessionNumber int        `json:"sessionNumber"`
	Exercises     []Exercise `json:"exercises"`
}

// Week is one computed week of the schedule.
type Week struct {
	WeekNumber int            `json:"weekNumber"`
	Percentage int            `json:"percentage"`
	RepsPerSet templates.Reps `json:"repsPerSet"`
	Sessions   []Session      `json:"sessions"`
}

// ComputedSchedule is the full derived schedule. It is regenerated whole
// whenever any input changes; callers memoize on SourceHash.
type ComputedSchedule struct {
	Weeks []Week `json:"weeks"`
}

// Generate computes the schedule for an active program. An unknown template
// id is fatal: the program state should never have been created with one.
func Generate(program *models.ActiveProgram, liftEntries []models.DerivedLiftEntry, profile *models.UserProfile, inv Inventories) (*ComputedSchedule, error) {
	tpl := templates.Get(program.TemplateID)
	if tpl == nil {
		return nil, fmt.Errorf("unknown template: %s", program.TemplateID)
	}

	byName := make(map[string]models.DerivedLiftEntry, len(liftEntries))
	for _, e := range liftEntries {
		byName[e.Name] = e
	}

	out := &ComputedSchedule{Weeks: make([]Week, 0, len(tpl.Weeks))}
	for _, week := range tpl.Weeks {
		w := Week{
			WeekNumber: week.WeekNumber,
			Percentage: week.Percentage,
			RepsPerSet: week.RepsPerSet,
			Sessions:   make([]Session, 0, len(tpl.SessionDefs)),
		}
		for _, def := range tpl.SessionDefs {
			pct := sessionPercentage(tpl, week, def.SessionNumber)
			session := Session{SessionNumber: def.SessionNumber}
			for _, liftName := range sessionLifts(tpl, def, program) {
				session.Exercises = append(session.Exercises,
					buildExercise(tpl, week, def.SessionNumber, liftName, byName, pct, profile, inv))
			}
			w.Sessions = append(w.Sessions, session)
		}
		out.Weeks = append(out.Weeks, w)
	}
	return out, nil
}

// sessionPercentage returns the intensity for one session. Only Zulu splits
// a week: sessions 1-2 run the cluster-one percentage, 3-4 cluster two.
func sessionPercentage(tpl *templates.Template, week templates.Week, sessionNumber int) int {
	if tpl.ID != templates.Zulu.ID {
		return week.Percentage
	}
	cp, ok := templates.ZuluClusterPercentages[week.WeekNumber]
	if !ok {
		return week.Percentage
	}
	if sessionNumber <= 2 {
		return cp.ClusterOne
	}
	return cp.ClusterTwo
}

// sessionLifts resolves the roster for one session: the template's fixed
// lifts if present, otherwise the user's selection for the session's slot,
// falling back to the slot defaults. Zulu alternates slots A/B across its
// four sessions (1,3 -> A; 2,4 -> B).
func sessionLifts(tpl *templates.Template, def templates.SessionDef, program *models.ActiveProgram) []string {
	if len(def.Lifts) > 0 {
		return def.Lifts
	}
	if len(tpl.LiftSlots) == 0 {
		return nil
	}

	slot := tpl.LiftSlots[0]
	if tpl.ID == templates.Zulu.ID {
		slot = tpl.LiftSlots[(def.SessionNumber-1)%2]
	}

	if selected, ok := program.LiftSelections[slot.Key]; ok && len(selected) > 0 {
		return selected
	}
	return slot.DefaultLifts
}

func buildExercise(tpl *templates.Template, week templates.Week, sessionNumber int, liftName string, byName map[string]models.DerivedLiftEntry, pct int, profile *models.UserProfile, inv Inventories) Exercise {
	entry, ok := byName[liftName]
	if !ok {
		// No max test recorded for this lift yet.
		return Exercise{
			LiftName:       liftName,
			PlateBreakdown: plates.Result{Plates: []plates.Plate{}, DisplayText: "Not achievable"},
		}
	}

	target := calc.PercentageWeight(entry.WorkingMax, pct, profile.RoundingIncrement)

	var breakdown plates.Result
	if entry.IsBodyweight {
		breakdown = plates.Belt(target, inv.Belt)
	} else {
		breakdown = plates.Barbell(target, profile.BarbellWeight, inv.Barbell)
	}

	ex := Exercise{
		LiftName:       liftName,
		TargetWeight:   target,
		Achievable:     breakdown.Achievable,
		PlateBreakdown: breakdown,
		IsBodyweight:   entry.IsBodyweight,
	}

	// Mass Strength's deadlift day runs its own volume table; the load still
	// follows the week percentage.
	if tpl.ID == templates.MassStrength.ID && sessionNumber == 4 {
		if sr, ok := templates.MassStrengthDeadliftWeeks[week.WeekNumber]; ok {
			ex.SetsReps = &sr
		}
	}
	return ex
}
