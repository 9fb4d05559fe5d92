package contract

import (
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// TodayRequest asks for the due-today view of a date. A zero Date means
// the service substitutes the current day.
type TodayRequest struct {
	Date time.Time
}

// DueHabit is a habit due on the requested date with its schedule
// parameters resolved against the day's primary day type.
type DueHabit struct {
	Habit     *domain.Habit
	TimeOfDay domain.TimeOfDay
	Cue       domain.Cue
	Streak    int
	DoneToday bool
}

// TodayResponse is the assembled due-today view.
type TodayResponse struct {
	Date     time.Time
	DayTypes []domain.DayType // first entry is the primary type for display
	Habits   []DueHabit
	Routines []*domain.Routine // already in time-of-day order
	Health   int
}

// PrimaryDayType returns the display-primary day type.
func (r *TodayResponse) PrimaryDayType() domain.DayType {
	if len(r.DayTypes) == 0 {
		return domain.DayRegular
	}
	return r.DayTypes[0]
}
