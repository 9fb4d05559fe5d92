package schedule

import (
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// FrequencyMatches reports whether a frequency rule fires on the given
// date. Weekly always matches: which day of the week the user actually
// does a weekly habit is their choice, not enforced here.
func FrequencyMatches(h *domain.Habit, date time.Time) bool {
	switch h.Frequency {
	case domain.FreqDaily, domain.FreqWeekly:
		return true
	case domain.FreqWeekdays:
		return !isWeekend(date.Weekday())
	case domain.FreqWeekends:
		return isWeekend(date.Weekday())
	case domain.FreqCustom:
		return h.OnCustomDay(date.Weekday())
	default:
		return false
	}
}

// IsHabitDueOn reports whether the habit is due on the date given the
// day's active types. Paused and archived habits are never due. The
// frequency and day-type affinity predicates are independent and both
// must hold.
func IsHabitDueOn(h *domain.Habit, date time.Time, active domain.DayTypeSet) bool {
	if h.Status != domain.HabitActive {
		return false
	}
	if !FrequencyMatches(h, date) {
		return false
	}
	return h.Affinity.Matches(active)
}

// HabitsDueOn filters habits to those due on the date.
func HabitsDueOn(habits []*domain.Habit, date time.Time, active domain.DayTypeSet) []*domain.Habit {
	var due []*domain.Habit
	for _, h := range habits {
		if IsHabitDueOn(h, date, active) {
			due = append(due, h)
		}
	}
	return due
}

// EffectiveTimeOfDay returns the habit's time of day on a day carrying
// dayType, honoring a per-day-type override when present.
func EffectiveTimeOfDay(h *domain.Habit, dayType domain.DayType) domain.TimeOfDay {
	if ov, ok := h.Overrides[dayType]; ok && ov.TimeOfDay != nil {
		return *ov.TimeOfDay
	}
	return h.TimeOfDay
}

// EffectiveCue returns the habit's cue on a day carrying dayType. The
// override value is merged into a copy of the base cue; the stored habit
// is never touched.
func EffectiveCue(h *domain.Habit, dayType domain.DayType) domain.Cue {
	cue := h.Cue
	if ov, ok := h.Overrides[dayType]; ok && ov.CueValue != nil {
		cue.Value = *ov.CueValue
	}
	return cue
}
