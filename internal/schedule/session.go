package schedule

import (
	"fmt"

	"github.com/claude/tb3/internal/models"
)

// RestDuration returns the rest period in seconds for the program's current
// week. The profile default wins when set; otherwise rest scales with the
// week's intensity, defaulting to 120s when the week can't be resolved.
func RestDuration(profile *models.UserProfile, program *models.ActiveProgram, sched *ComputedSchedule) int {
	if profile != nil && profile.RestTimerDefault > 0 {
		return profile.RestTimerDefault
	}
	if program == nil || sched == nil {
		return 120
	}
	for _, w := range sched.Weeks {
		if w.WeekNumber == program.CurrentWeek {
			switch {
			case w.Percentage >= 90:
				return 180
			case w.Percentage >= 70:
				return 120
			default:
				return 90
			}
		}
	}
	return 120
}

// FormatTimerDisplay renders elapsed milliseconds as m:ss.
func FormatTimerDisplay(ms int) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
