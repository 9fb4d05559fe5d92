package schedule

import (
	"sort"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// RoutinesDueOn filters active routines to those due on the date, using
// the same frequency-and-affinity rule as habits, and returns them in
// time-of-day order. When smart scheduling is disabled the affinity check
// is skipped entirely and only the frequency rule applies.
func RoutinesDueOn(routines []*domain.Routine, date time.Time, config domain.ScheduleConfig) []*domain.Routine {
	var active domain.DayTypeSet
	if config.Enabled {
		active = ActiveSet(date, config)
	}

	var due []*domain.Routine
	for _, r := range routines {
		if r.Status != domain.RoutineActive {
			continue
		}
		if !routineFrequencyMatches(r, date) {
			continue
		}
		if config.Enabled && !r.Affinity.Matches(active) {
			continue
		}
		due = append(due, r)
	}
	SortRoutinesByTimeOfDay(due)
	return due
}

func routineFrequencyMatches(r *domain.Routine, date time.Time) bool {
	switch r.Frequency {
	case domain.FreqDaily:
		return true
	case domain.FreqWeekdays:
		return !isWeekend(date.Weekday())
	case domain.FreqWeekends:
		return isWeekend(date.Weekday())
	default:
		return false
	}
}

// SortRoutinesByTimeOfDay orders routines morning < afternoon < evening <
// night < anytime. The sort is stable: equal-rank routines keep their
// relative input order.
func SortRoutinesByTimeOfDay(routines []*domain.Routine) {
	sort.SliceStable(routines, func(i, j int) bool {
		return domain.TimeOfDayRank(routines[i].TimeOfDay) < domain.TimeOfDayRank(routines[j].TimeOfDay)
	})
}
