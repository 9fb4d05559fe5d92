package schedule

import (
	"math"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

const healthWindowDays = 7

// SystemHealth scores the habit system over the trailing seven calendar
// days: the percentage of expected habit occurrences that were actually
// completed, across all active habits combined. A window with nothing
// expected scores 100.
func SystemHealth(habits []*domain.Habit, completions []*domain.HabitCompletion, today time.Time) int {
	end := dateOnly(today)
	start := end.AddDate(0, 0, -(healthWindowDays - 1))

	completedByHabit := make(map[string]map[string]bool)
	for _, c := range completions {
		d := dateOnly(c.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		if completedByHabit[c.HabitID] == nil {
			completedByHabit[c.HabitID] = make(map[string]bool)
		}
		completedByHabit[c.HabitID][d.Format(domain.DateKey)] = true
	}

	expected, completed := 0, 0
	for _, h := range habits {
		if h.Status != domain.HabitActive {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !FrequencyMatches(h, d) {
				continue
			}
			expected++
			if completedByHabit[h.ID][d.Format(domain.DateKey)] {
				completed++
			}
		}
	}

	if expected == 0 {
		return 100
	}
	return int(math.Round(100 * float64(completed) / float64(expected)))
}
