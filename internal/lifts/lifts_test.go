package lifts

import (
	"math"
	"testing"

	"github.com/claude/tb3/internal/models"
)

func testData(tests ...models.OneRepMaxTest) *models.AppData {
	data := models.DefaultAppData()
	data.MaxTestHistory = tests
	return data
}

func makeTest(id, lift string, weight float64, reps int, date string) models.OneRepMaxTest {
	return models.OneRepMaxTest{
		ID: id, LiftName: lift, Weight: weight, Reps: reps, Date: date,
		MaxType: "training", LastModified: date + "T00:00:00.000Z",
	}
}

// TestCurrentEmptyHistory verifies no tests derive no lifts.
func TestCurrentEmptyHistory(t *testing.T) {
	if got := Current(testData()); len(got) != 0 {
		t.Errorf("Current() = %v, want empty", got)
	}
	if got := Current(nil); len(got) != 0 {
		t.Errorf("Current(nil) = %v, want empty", got)
	}
}

// TestCurrentSingleTest verifies a single test produces one entry carrying
// the raw test values.
func TestCurrentSingleTest(t *testing.T) {
	got := Current(testData(makeTest("t1", "Squat", 300, 5, "2025-01-01")))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Name != "Squat" || got[0].Weight != 300 || got[0].Reps != 5 {
		t.Errorf("entry = %+v", got[0])
	}
}

// TestCurrentKeepsLatestTest verifies an older test is superseded, not
// averaged or duplicated.
func TestCurrentKeepsLatestTest(t *testing.T) {
	got := Current(testData(
		makeTest("t1", "Squat", 250, 5, "2025-01-01"),
		makeTest("t2", "Squat", 300, 5, "2025-06-01"),
	))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Weight != 300 || got[0].TestDate != "2025-06-01" {
		t.Errorf("entry = %+v, want the June test", got[0])
	}
}

// TestCurrentSameDateTieBreak verifies the heavier test wins a date tie.
func TestCurrentSameDateTieBreak(t *testing.T) {
	got := Current(testData(
		makeTest("t1", "Squat", 310, 5, "2025-01-01"),
		makeTest("t2", "Squat", 300, 5, "2025-01-01"),
	))
	if got[0].Weight != 310 {
		t.Errorf("weight = %v, want 310 (heavier test on tied date)", got[0].Weight)
	}
}

// TestCurrentOneEntryPerLift verifies grouping by lift name with sorted
// output.
func TestCurrentOneEntryPerLift(t *testing.T) {
	got := Current(testData(
		makeTest("t1", "Squat", 300, 5, "2025-01-01"),
		makeTest("t2", "Bench", 200, 5, "2025-01-01"),
		makeTest("t3", "Deadlift", 400, 5, "2025-01-01"),
	))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []string{"Bench", "Deadlift", "Squat"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("entry %d = %s, want %s", i, got[i].Name, want)
		}
	}
}

// TestCurrentTrainingMax verifies the 90% working max under the training
// max type.
func TestCurrentTrainingMax(t *testing.T) {
	data := testData(makeTest("t1", "Squat", 300, 1, "2025-01-01"))
	data.Profile.MaxType = "training"
	got := Current(data)
	if math.Abs(got[0].OneRepMax-300) > 1e-9 {
		t.Errorf("oneRepMax = %v, want 300", got[0].OneRepMax)
	}
	if math.Abs(got[0].WorkingMax-270) > 0.1 {
		t.Errorf("workingMax = %v, want 270", got[0].WorkingMax)
	}
}

// TestCurrentTrueMax verifies the working max equals the 1RM under the true
// max type.
func TestCurrentTrueMax(t *testing.T) {
	data := testData(makeTest("t1", "Squat", 300, 1, "2025-01-01"))
	data.Profile.MaxType = "true"
	got := Current(data)
	if got[0].WorkingMax != 300 {
		t.Errorf("workingMax = %v, want 300", got[0].WorkingMax)
	}
}

// TestCurrentBodyweightFlag verifies only the pull-up lift is flagged.
func TestCurrentBodyweightFlag(t *testing.T) {
	got := Current(testData(
		makeTest("t1", "Weighted Pull-up", 50, 5, "2025-01-01"),
		makeTest("t2", "Squat", 300, 5, "2025-01-01"),
	))
	for _, e := range got {
		want := e.Name == "Weighted Pull-up"
		if e.IsBodyweight != want {
			t.Errorf("%s isBodyweight = %v, want %v", e.Name, e.IsBodyweight, want)
		}
	}
}

// TestCurrentEpley verifies the derived 1RM uses the Epley estimate.
func TestCurrentEpley(t *testing.T) {
	got := Current(testData(makeTest("t1", "Bench", 200, 5, "2025-01-01")))
	if math.Abs(got[0].OneRepMax-233.33) > 0.01 {
		t.Errorf("oneRepMax = %v, want ~233.33", got[0].OneRepMax)
	}
}
