package schedule

import (
	"testing"

	"github.com/claude/tb3/internal/models"
)

// TestRestDurationProfileDefault verifies an explicit profile rest wins.
func TestRestDurationProfileDefault(t *testing.T) {
	profile := models.DefaultProfile()
	profile.RestTimerDefault = 240
	if got := RestDuration(profile, nil, nil); got != 240 {
		t.Errorf("RestDuration = %d, want 240", got)
	}
}

// TestRestDurationScalesWithIntensity verifies auto-detection from the
// current week's percentage.
func TestRestDurationScalesWithIntensity(t *testing.T) {
	profile := models.DefaultProfile()
	program := makeProgram("operator")
	sched := &ComputedSchedule{Weeks: []Week{
		{WeekNumber: 1, Percentage: 65},
		{WeekNumber: 2, Percentage: 70},
		{WeekNumber: 3, Percentage: 90},
	}}

	program.CurrentWeek = 1
	if got := RestDuration(profile, program, sched); got != 90 {
		t.Errorf("65%% rest = %d, want 90", got)
	}
	program.CurrentWeek = 2
	if got := RestDuration(profile, program, sched); got != 120 {
		t.Errorf("70%% rest = %d, want 120", got)
	}
	program.CurrentWeek = 3
	if got := RestDuration(profile, program, sched); got != 180 {
		t.Errorf("90%% rest = %d, want 180", got)
	}

	program.CurrentWeek = 99
	if got := RestDuration(profile, program, sched); got != 120 {
		t.Errorf("unknown week rest = %d, want 120", got)
	}
}

// TestFormatTimerDisplay verifies m:ss rendering with zero padding.
func TestFormatTimerDisplay(t *testing.T) {
	for _, tc := range []struct {
		ms   int
		want string
	}{
		{0, "0:00"},
		{59_000, "0:59"},
		{60_000, "1:00"},
		{61_500, "1:01"},
		{600_000, "10:00"},
	} {
		if got := FormatTimerDisplay(tc.ms); got != tc.want {
			t.Errorf("FormatTimerDisplay(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
