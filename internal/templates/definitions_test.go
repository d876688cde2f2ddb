package templates

import (
	"encoding/json"
	"testing"
)

// TestCatalogSize verifies the closed set of seven templates.
func TestCatalogSize(t *testing.T) {
	if len(All) != 7 {
		t.Fatalf("catalog has %d templates, want 7", len(All))
	}
}

// TestOperatorStructure verifies the Operator shape: six weeks, three fixed
// sessions, set-range volume.
func TestOperatorStructure(t *testing.T) {
	if Operator.DurationWeeks != 6 || Operator.SessionsPerWeek != 3 {
		t.Errorf("Operator is %dw x %d, want 6x3", Operator.DurationWeeks, Operator.SessionsPerWeek)
	}
	if !Operator.HasSetRange || Operator.RequiresLiftSelection {
		t.Error("Operator should have a set range and a fixed roster")
	}
	if len(Operator.Weeks) != 6 || len(Operator.SessionDefs) != 3 {
		t.Errorf("Operator weeks/sessions = %d/%d, want 6/3", len(Operator.Weeks), len(Operator.SessionDefs))
	}
	if Operator.Weeks[0].Percentage != 70 {
		t.Errorf("Operator week 1 = %d%%, want 70", Operator.Weeks[0].Percentage)
	}
}

// TestOperatorSessionThreeSwapsDeadlift verifies the third session replaces
// the pull-up with Deadlift.
func TestOperatorSessionThreeSwapsDeadlift(t *testing.T) {
	var s3 *SessionDef
	for i := range Operator.SessionDefs {
		if Operator.SessionDefs[i].SessionNumber == 3 {
			s3 = &Operator.SessionDefs[i]
		}
	}
	if s3 == nil {
		t.Fatal("no session 3")
	}
	hasDL, hasPullup := false, false
	for _, l := range s3.Lifts {
		if l == "Deadlift" {
			hasDL = true
		}
		if l == "Weighted Pull-up" {
			hasPullup = true
		}
	}
	if !hasDL || hasPullup {
		t.Errorf("session 3 lifts = %v, want Deadlift and no Weighted Pull-up", s3.Lifts)
	}
}

// TestZuluStructure verifies the A/B cluster layout.
func TestZuluStructure(t *testing.T) {
	if Zulu.DurationWeeks != 6 || Zulu.SessionsPerWeek != 4 {
		t.Errorf("Zulu is %dw x %d, want 6x4", Zulu.DurationWeeks, Zulu.SessionsPerWeek)
	}
	if !Zulu.RequiresLiftSelection || Zulu.HasSetRange {
		t.Error("Zulu should require selection and carry no set range")
	}
	if len(Zulu.LiftSlots) != 2 || Zulu.LiftSlots[0].Cluster != "A" || Zulu.LiftSlots[1].Cluster != "B" {
		t.Errorf("Zulu slots = %+v, want A and B clusters", Zulu.LiftSlots)
	}
}

// TestZuluClusterPercentages verifies the split-intensity lookup table.
func TestZuluClusterPercentages(t *testing.T) {
	if ZuluClusterPercentages[1] != (ClusterPercentages{ClusterOne: 70, ClusterTwo: 75}) {
		t.Errorf("week 1 = %+v, want 70/75", ZuluClusterPercentages[1])
	}
	if ZuluClusterPercentages[3] != (ClusterPercentages{ClusterOne: 90, ClusterTwo: 90}) {
		t.Errorf("week 3 = %+v, want 90/90", ZuluClusterPercentages[3])
	}
	for w := 1; w <= 6; w++ {
		if _, ok := ZuluClusterPercentages[w]; !ok {
			t.Errorf("missing cluster percentages for week %d", w)
		}
	}
}

// TestFighterSlot verifies the 2-day template wants 2-3 lifts in one slot.
func TestFighterSlot(t *testing.T) {
	if Fighter.DurationWeeks != 6 || Fighter.SessionsPerWeek != 2 {
		t.Errorf("Fighter is %dw x %d, want 6x2", Fighter.DurationWeeks, Fighter.SessionsPerWeek)
	}
	if !Fighter.RequiresLiftSelection || !Fighter.HasSetRange {
		t.Error("Fighter should require selection and carry a set range")
	}
	slot := Fighter.LiftSlots[0]
	if slot.MinLifts != 2 || slot.MaxLifts != 3 {
		t.Errorf("Fighter slot wants %d-%d lifts, want 2-3", slot.MinLifts, slot.MaxLifts)
	}
}

// TestGladiatorPeakWeek verifies the week 6 descending rep ladder at 95%.
func TestGladiatorPeakWeek(t *testing.T) {
	week6 := Gladiator.Weeks[5]
	if week6.Percentage != 95 {
		t.Errorf("week 6 = %d%%, want 95", week6.Percentage)
	}
	want := Reps{3, 2, 1, 3, 2}
	if len(week6.RepsPerSet) != len(want) {
		t.Fatalf("week 6 reps = %v, want %v", week6.RepsPerSet, want)
	}
	for i := range want {
		if week6.RepsPerSet[i] != want[i] {
			t.Fatalf("week 6 reps = %v, want %v", week6.RepsPerSet, want)
		}
	}
}

// TestMassProtocolHidesRestTimer verifies the rest-timer suppression flag.
func TestMassProtocolHidesRestTimer(t *testing.T) {
	if !MassProtocol.HideRestTimer {
		t.Error("Mass Protocol should hide the rest timer")
	}
	if MassProtocol.DurationWeeks != 6 || MassProtocol.SessionsPerWeek != 3 {
		t.Errorf("Mass Protocol is %dw x %d, want 6x3", MassProtocol.DurationWeeks, MassProtocol.SessionsPerWeek)
	}
}

// TestMassStrengthDeadliftDay verifies session 4 is deadlift-only and the
// week-indexed volume table anchors at 4x5 and 1x3.
func TestMassStrengthDeadliftDay(t *testing.T) {
	if MassStrength.DurationWeeks != 3 || MassStrength.SessionsPerWeek != 4 {
		t.Errorf("Mass Strength is %dw x %d, want 3x4", MassStrength.DurationWeeks, MassStrength.SessionsPerWeek)
	}
	if MassStrength.RequiresLiftSelection {
		t.Error("Mass Strength roster is fixed")
	}
	s4 := MassStrength.SessionDefs[3]
	if s4.SessionNumber != 4 || len(s4.Lifts) != 1 || s4.Lifts[0] != "Deadlift" {
		t.Errorf("session 4 = %+v, want Deadlift only", s4)
	}
	if MassStrengthDeadliftWeeks[1] != (SetsReps{Sets: 4, Reps: 5}) {
		t.Errorf("DL week 1 = %+v, want 4x5", MassStrengthDeadliftWeeks[1])
	}
	if MassStrengthDeadliftWeeks[3] != (SetsReps{Sets: 1, Reps: 3}) {
		t.Errorf("DL week 3 = %+v, want 1x3", MassStrengthDeadliftWeeks[3])
	}
}

// TestGreyManPeaks verifies the 12-week layout with 95% singles at weeks 9
// and 12.
func TestGreyManPeaks(t *testing.T) {
	if GreyMan.DurationWeeks != 12 || len(GreyMan.Weeks) != 12 {
		t.Fatalf("Grey Man has %d weeks, want 12", len(GreyMan.Weeks))
	}
	for _, n := range []int{9, 12} {
		w := GreyMan.Weeks[n-1]
		if w.Percentage != 95 {
			t.Errorf("week %d = %d%%, want 95", n, w.Percentage)
		}
		if !w.RepsPerSet.Uniform() || w.RepsPerSet[0] != 1 {
			t.Errorf("week %d reps = %v, want singles", n, w.RepsPerSet)
		}
	}
}

// TestGet verifies catalog lookup by id, including the miss case.
func TestGet(t *testing.T) {
	if Get("operator") != &Operator {
		t.Error("Get(operator) did not return the Operator record")
	}
	if Get("grey-man") != &GreyMan {
		t.Error("Get(grey-man) did not return the Grey Man record")
	}
	if Get("nonexistent") != nil {
		t.Error("Get(nonexistent) should be nil")
	}
}

// TestForDays verifies the day-count recommendations.
func TestForDays(t *testing.T) {
	if got := ForDays(2); len(got) != 1 || got[0].ID != "fighter" {
		t.Errorf("ForDays(2) = %v", ids(got))
	}
	got := ForDays(3)
	if len(got) != 4 {
		t.Fatalf("ForDays(3) returned %d templates, want 4", len(got))
	}
	for _, want := range []string{"operator", "gladiator", "mass-protocol", "grey-man"} {
		found := false
		for _, tpl := range got {
			if tpl.ID == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ForDays(3) missing %s", want)
		}
	}
	if got := ForDays(4); len(got) != 1 || got[0].ID != "zulu" {
		t.Errorf("ForDays(4) = %v", ids(got))
	}
	if got := ForDays(5); len(got) != 7 {
		t.Errorf("ForDays(5) returned %d templates, want all 7", len(got))
	}
	if got := ForDays(1); len(got) != 7 {
		t.Errorf("ForDays(1) returned %d templates, want all 7", len(got))
	}
}

func ids(ts []*Template) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

// TestRepsJSON verifies the scalar-or-array encoding round-trips both forms.
func TestRepsJSON(t *testing.T) {
	b, err := json.Marshal(Of(5))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "5" {
		t.Errorf("uniform reps marshal = %s, want 5", b)
	}

	b, err = json.Marshal(Reps{3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[3,2,1]" {
		t.Errorf("ladder reps marshal = %s, want [3,2,1]", b)
	}

	var r Reps
	if err := json.Unmarshal([]byte("4"), &r); err != nil {
		t.Fatal(err)
	}
	if !r.Uniform() || r[0] != 4 {
		t.Errorf("unmarshal 4 = %v", r)
	}
	if err := json.Unmarshal([]byte("[3,2]"), &r); err != nil {
		t.Fatal(err)
	}
	if len(r) != 2 || r[0] != 3 || r[1] != 2 {
		t.Errorf("unmarshal [3,2] = %v", r)
	}
	if err := json.Unmarshal([]byte(`"x"`), &r); err == nil {
		t.Error("unmarshal of a string should fail")
	}
}
