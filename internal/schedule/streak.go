package schedule

import (
	"sort"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// CalculateStreak counts consecutive expected-and-completed occurrences of
// a habit, ending at the most recent completion. The streak is live only
// if that completion was today or yesterday; anything older is 0. Walking
// backward, each completion must land exactly on the previous expected day
// under the habit's frequency; the count freezes at the first gap.
func CalculateStreak(h *domain.Habit, completions []*domain.HabitCompletion, today time.Time) int {
	days := completionDays(h.ID, completions)
	if len(days) == 0 {
		return 0
	}

	latest := days[0]
	t := dateOnly(today)
	if latest.Before(t.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	current := latest
	for _, d := range days[1:] {
		expected := previousExpectedDay(h, current)
		if !d.Equal(expected) {
			break
		}
		streak++
		current = d
	}
	return streak
}

// previousExpectedDay returns the day before `from` on which the habit was
// last expected. Weekdays/weekends skip non-matching days; weekly is
// exactly seven days prior; custom walks back to the nearest custom day.
func previousExpectedDay(h *domain.Habit, from time.Time) time.Time {
	switch h.Frequency {
	case domain.FreqWeekly:
		return from.AddDate(0, 0, -7)
	case domain.FreqWeekdays:
		d := from.AddDate(0, 0, -1)
		for isWeekend(d.Weekday()) {
			d = d.AddDate(0, 0, -1)
		}
		return d
	case domain.FreqWeekends:
		d := from.AddDate(0, 0, -1)
		for !isWeekend(d.Weekday()) {
			d = d.AddDate(0, 0, -1)
		}
		return d
	case domain.FreqCustom:
		d := from.AddDate(0, 0, -1)
		for i := 0; i < 7; i++ {
			if h.OnCustomDay(d.Weekday()) {
				return d
			}
			d = d.AddDate(0, 0, -1)
		}
		return d
	default: // daily
		return from.AddDate(0, 0, -1)
	}
}

// completionDays returns the distinct completion dates for the habit,
// newest first. Repeat completions on the same day collapse to one.
func completionDays(habitID string, completions []*domain.HabitCompletion) []time.Time {
	seen := make(map[string]bool)
	var days []time.Time
	for _, c := range completions {
		if c.HabitID != habitID {
			continue
		}
		key := c.Date.Format(domain.DateKey)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, dateOnly(c.Date))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
