// Package templates is the static catalog of training programs. Each
// template is a plain data record; schedule generation branches on template
// fields and ids, never on behavior attached to the templates themselves.
package templates

// Week is one week of a template's wave.
type Week struct {
	WeekNumber int        `json:"weekNumber"`
	Percentage int        `json:"percentage"`
	RepsPerSet Reps       `json:"repsPerSet"`
	SetsRange  *SetsRange `json:"setsRange,omitempty"`
}

// SetsRange is the set count band for templates that leave volume to the
// lifter (3-5 sets in the strength waves).
type SetsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SessionDef fixes the lift roster of one session. An empty roster means the
// session is filled from the user's lift selections.
type SessionDef struct {
	SessionNumber int      `json:"sessionNumber"`
	Lifts         []string `json:"lifts"`
}

// LiftSlot is a selection slot the user fills when starting a program.
type LiftSlot struct {
	Key          string   `json:"key"`
	Cluster      string   `json:"cluster,omitempty"`
	MinLifts     int      `json:"minLifts"`
	MaxLifts     int      `json:"maxLifts"`
	DefaultLifts []string `json:"defaultLifts"`
}

// Template is one complete program definition.
type Template struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	DurationWeeks         int          `json:"durationWeeks"`
	SessionsPerWeek       int          `json:"sessionsPerWeek"`
	HasSetRange           bool         `json:"hasSetRange"`
	RequiresLiftSelection bool         `json:"requiresLiftSelection"`
	LiftSlots             []LiftSlot   `json:"liftSlots,omitempty"`
	Weeks                 []Week       `json:"weeks"`
	SessionDefs           []SessionDef `json:"sessionDefs"`
	HideRestTimer         bool         `json:"hideRestTimer,omitempty"`
}

// ClusterPercentages splits a Zulu week's intensity between the first and
// second pair of sessions.
type ClusterPercentages struct {
	ClusterOne int `json:"clusterOne"`
	ClusterTwo int `json:"clusterTwo"`
}

// SetsReps is a fixed sets x reps prescription.
type SetsReps struct {
	Sets int `json:"sets"`
	Reps int `json:"reps"`
}

// setRange35 is the 3-5 set band shared by the set-range templates.
var setRange35 = &SetsRange{Min: 3, Max: 5}

// strengthWave is the standard six-week wave the barbell templates run:
// two ascending triples of intensity, ending in a near-max single.
func strengthWave(withRange bool) []Week {
	weeks := []Week{
		{WeekNumber: 1, Percentage: 70, RepsPerSet: Of(5)},
		{WeekNumber: 2, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 3, Percentage: 90, RepsPerSet: Of(3)},
		{WeekNumber: 4, Percentage: 75, RepsPerSet: Of(5)},
		{WeekNumber: 5, Percentage: 85, RepsPerSet: Of(3)},
		{WeekNumber: 6, Percentage: 95, RepsPerSet: Of(1)},
	}
	if withRange {
		for i := range weeks {
			weeks[i].SetsRange = setRange35
		}
	}
	return weeks
}

// Operator: the bread-and-butter 3-day template. Fixed roster; the third
// session swaps the pull-up for Deadlift.
var Operator = Template{
	ID:              "operator",
	Name:            "Operator",
	DurationWeeks:   6,
	SessionsPerWeek: 3,
	HasSetRange:     true,
	Weeks:           strengthWave(true),
	SessionDefs: []SessionDef{
		{SessionNumber: 1, Lifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
		{SessionNumber: 2, Lifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
		{SessionNumber: 3, Lifts: []string{"Squat", "Bench", "Deadlift"}},
	},
}

// ZuluClusterPercentages keys week number to the split intensity of the A/B
// session pairs. Sessions 1-2 run clusterOne, sessions 3-4 clusterTwo.
var ZuluClusterPercentages = map[int]ClusterPercentages{
	1: {ClusterOne: 70, ClusterTwo: 75},
	2: {ClusterOne: 80, ClusterTwo: 85},
	3: {ClusterOne: 90, ClusterTwo: 90},
	4: {ClusterOne: 75, ClusterTwo: 80},
	5: {ClusterOne: 85, ClusterTwo: 90},
	6: {ClusterOne: 95, ClusterTwo: 95},
}

// Zulu: 4-day template with two user-selected lift clusters. The week rows
// carry the clusterOne percentage; generation reads the cluster table.
var Zulu = Template{
	ID:                    "zulu",
	Name:                  "Zulu",
	DurationWeeks:         6,
	SessionsPerWeek:       4,
	RequiresLiftSelection: true,
	LiftSlots: []LiftSlot{
		{Key: "A", Cluster: "A", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Squat", "Military Press"}},
		{Key: "B", Cluster: "B", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Bench", "Deadlift"}},
	},
	Weeks: []Week{
		{WeekNumber: 1, Percentage: 70, RepsPerSet: Of(5)},
		{WeekNumber: 2, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 3, Percentage: 90, RepsPerSet: Of(3)},
		{WeekNumber: 4, Percentage: 75, RepsPerSet: Of(5)},
		{WeekNumber: 5, Percentage: 85, RepsPerSet: Of(3)},
		{WeekNumber: 6, Percentage: 95, RepsPerSet: Of(1)},
	},
	SessionDefs: []SessionDef{
		{SessionNumber: 1},
		{SessionNumber: 2},
		{SessionNumber: 3},
		{SessionNumber: 4},
	},
}

// Fighter: minimalist 2-day template, 2-3 lifts of the user's choosing.
var Fighter = Template{
	ID:                    "fighter",
	Name:                  "Fighter",
	DurationWeeks:         6,
	SessionsPerWeek:       2,
	HasSetRange:           true,
	RequiresLiftSelection: true,
	LiftSlots: []LiftSlot{
		{Key: "cluster", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Squat", "Bench"}},
	},
	Weeks: strengthWave(true),
	SessionDefs: []SessionDef{
		{SessionNumber: 1},
		{SessionNumber: 2},
	},
}

// Gladiator: a heavier 3-day wave peaking in a non-uniform rep ladder.
var Gladiator = Template{
	ID:                    "gladiator",
	Name:                  "Gladiator",
	DurationWeeks:         6,
	SessionsPerWeek:       3,
	RequiresLiftSelection: true,
	LiftSlots: []LiftSlot{
		{Key: "cluster", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Squat", "Bench", "Deadlift"}},
	},
	Weeks: []Week{
		{WeekNumber: 1, Percentage: 70, RepsPerSet: Of(5)},
		{WeekNumber: 2, Percentage: 75, RepsPerSet: Of(5)},
		{WeekNumber: 3, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 4, Percentage: 85, RepsPerSet: Of(3)},
		{WeekNumber: 5, Percentage: 90, RepsPerSet: Of(2)},
		{WeekNumber: 6, Percentage: 95, RepsPerSet: Reps{3, 2, 1, 3, 2}},
	},
	SessionDefs: []SessionDef{
		{SessionNumber: 1},
		{SessionNumber: 2},
		{SessionNumber: 3},
	},
}

// MassProtocol: hypertrophy volume work. The rest timer is suppressed — the
// protocol runs on short fixed rests the lifter paces themselves.
var MassProtocol = Template{
	ID:                    "mass-protocol",
	Name:                  "Mass Protocol",
	DurationWeeks:         6,
	SessionsPerWeek:       3,
	RequiresLiftSelection: true,
	HideRestTimer:         true,
	LiftSlots: []LiftSlot{
		{Key: "cluster", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
	},
	Weeks: []Week{
		{WeekNumber: 1, Percentage: 70, RepsPerSet: Of(8)},
		{WeekNumber: 2, Percentage: 75, RepsPerSet: Of(6)},
		{WeekNumber: 3, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 4, Percentage: 70, RepsPerSet: Of(8)},
		{WeekNumber: 5, Percentage: 75, RepsPerSet: Of(6)},
		{WeekNumber: 6, Percentage: 80, RepsPerSet: Of(5)},
	},
	SessionDefs: []SessionDef{
		{SessionNumber: 1},
		{SessionNumber: 2},
		{SessionNumber: 3},
	},
}

// MassStrengthDeadliftWeeks is the dedicated sets/reps table for Mass
// Strength's deadlift-only fourth session, keyed by week number.
var MassStrengthDeadliftWeeks = map[int]SetsReps{
	1: {Sets: 4, Reps: 5},
	2: {Sets: 3, Reps: 4},
	3: {Sets: 1, Reps: 3},
}

// MassStrength: a short 4-day block. Sessions 1-3 run the fixed roster;
// session 4 is Deadlift alone on its own volume table.
var MassStrength = Template{
	ID:              "mass-strength",
	Name:            "Mass Strength",
	DurationWeeks:   3,
	SessionsPerWeek: 4,
	Weeks: []Week{
		{WeekNumber: 1, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 2, Percentage: 85, RepsPerSet: Of(4)},
		{WeekNumber: 3, Percentage: 90, RepsPerSet: Of(3)},
	},
	SessionDefs: []SessionDef{
		{SessionNumber: 1, Lifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
		{SessionNumber: 2, Lifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
		{SessionNumber: 3, Lifts: []string{"Squat", "Bench", "Weighted Pull-up"}},
		{SessionNumber: 4, Lifts: []string{"Deadlift"}},
	},
}

// GreyMan: a twelve-week double wave for long deployments, peaking in
// singles at weeks 9 and 12.
var GreyMan = Template{
	ID:                    "grey-man",
	Name:                  "Grey Man",
	DurationWeeks:         12,
	SessionsPerWeek:       3,
	RequiresLiftSelection: true,
	LiftSlots: []LiftSlot{
		{Key: "cluster", MinLifts: 2, MaxLifts: 3, DefaultLifts: []string{"Squat", "Bench", "Deadlift"}},
	},
	Weeks: []Week{
		{WeekNumber: 1, Percentage: 70, RepsPerSet: Of(5)},
		{WeekNumber: 2, Percentage: 75, RepsPerSet: Of(5)},
		{WeekNumber: 3, Percentage: 80, RepsPerSet: Of(5)},
		{WeekNumber: 4, Percentage: 75, RepsPerSet: Of(5)},
		{WeekNumber: 5, Percentage: 80, RepsPerSet: Of(3)},
		{WeekNumber: 6, Percentage: 85, RepsPerSet: Of(3)},
		{WeekNumber: 7, Percentage: 80, RepsPerSet: Of(3)},
		{WeekNumber: 8, Percentage: 90, RepsPerSet: Of(2)},
		{WeekNumber: 9, Percentage: 95, RepsPerSet: Of(1)},
		{WeekNumber: 10, Percentage: 85, RepsPerSet: Of(3)},
		{WeekNumber: 11, Percentage: 90, RepsPerSet: Of(2)},
		{WeekNumber: 12, Percentage: 95, RepsPerSet: Of(1)},
	},
	SessionDefs: []SessionDef{
		{SessionNumber: 1},
		{SessionNumber: 2},
		{SessionNumber: 3},
	},
}

// All lists every template in catalog order.
var All = []*Template{
	&Operator, &Zulu, &Fighter, &Gladiator, &MassProtocol, &MassStrength, &GreyMan,
}

// Get returns the template with the given id, or nil when unknown. An
// unknown id is not an error at this layer; the schedule generator treats
// it as fatal, validation treats it as recoverable.
func Get(id string) *Template {
	for _, t := range All {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ForDays returns the templates matching a training-days-per-week budget:
// Fighter for 2, the four 3-day templates for 3, Zulu for 4, and the whole
// catalog for anything else. Mass Strength trains 4 days but is a 3-week
// specialty block, not a 4-day recommendation.
func ForDays(n int) []*Template {
	switch n {
	case 2:
		return []*Template{&Fighter}
	case 3:
		return []*Template{&Operator, &Gladiator, &MassProtocol, &GreyMan}
	case 4:
		return []*Template{&Zulu}
	default:
		out := make([]*Template, len(All))
		copy(out, All)
		return out
	}
}
