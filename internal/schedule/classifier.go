// Package schedule decides which habits and routines are due on a given
// calendar date. Everything here is a pure function over immutable
// snapshots: no I/O, no mutation of inputs, safe to call concurrently.
package schedule

import (
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// DayTypesFor returns the active day types for a date. Marked dates win;
// unmarked dates auto-detect to a single weekend or regular type. The
// result is never empty. The first element is the primary type for
// display; order carries no other meaning.
func DayTypesFor(date time.Time, config domain.ScheduleConfig) []domain.DayType {
	if marked, ok := config.Marked(date); ok {
		return marked.Sorted()
	}
	if isWeekend(date.Weekday()) {
		return []domain.DayType{domain.DayWeekend}
	}
	return []domain.DayType{domain.DayRegular}
}

// ActiveSet is DayTypesFor as a set, for intersection tests.
func ActiveSet(date time.Time, config domain.ScheduleConfig) domain.DayTypeSet {
	return domain.NewDayTypeSet(DayTypesFor(date, config)...)
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
