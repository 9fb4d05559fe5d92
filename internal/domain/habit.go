package domain

import (
	"fmt"
	"time"
)

// Cue is the behavior-change trigger attached to a habit.
type Cue struct {
	Kind  string // e.g. "time", "location", "after_habit"
	Value string
}

// DayTypeOverride tweaks a habit's schedule on days carrying a specific
// day type. Nil fields mean "no override for that field".
type DayTypeOverride struct {
	TimeOfDay *TimeOfDay
	CueValue  *string
}

// Affinity is the rule by which a habit or routine opts into day types.
// The zero value applies to all day types, which is the backward-compatible
// default for records that never declared an affinity.
type Affinity struct {
	restricted bool
	types      DayTypeSet
}

// AllDayTypes is the affinity that matches every day.
func AllDayTypes() Affinity {
	return Affinity{}
}

// RestrictedTo builds an affinity matching only days that carry at least
// one of the given types. An empty list collapses to AllDayTypes: absence
// of a restriction means "applies always", never "applies never".
func RestrictedTo(types ...DayType) Affinity {
	if len(types) == 0 {
		return Affinity{}
	}
	return Affinity{restricted: true, types: NewDayTypeSet(types...)}
}

// IsRestricted reports whether the affinity names a specific day-type set.
func (a Affinity) IsRestricted() bool {
	return a.restricted
}

// Matches reports whether a day carrying the given active types satisfies
// the affinity. Any overlap counts.
func (a Affinity) Matches(active DayTypeSet) bool {
	if !a.restricted {
		return true
	}
	return a.types.Intersects(active)
}

// Types returns the restricted set, or nil for AllDayTypes.
func (a Affinity) Types() DayTypeSet {
	if !a.restricted {
		return nil
	}
	return a.types.Clone()
}

// Habit is a single recurring behavior.
type Habit struct {
	ID     string
	LoopID string
	Name   string

	Cue      Cue
	Response string
	Reward   string

	Frequency  Frequency
	CustomDays []time.Weekday // required non-empty when Frequency == FreqCustom
	TimeOfDay  TimeOfDay

	Affinity  Affinity
	Overrides map[DayType]DayTypeOverride

	Status    HabitStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks structural invariants before persistence.
func (h *Habit) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("habit name is required")
	}
	if !ValidFrequencies[string(h.Frequency)] {
		return fmt.Errorf("invalid frequency %q", h.Frequency)
	}
	if h.Frequency == FreqCustom && len(h.CustomDays) == 0 {
		return fmt.Errorf("custom frequency requires at least one weekday")
	}
	return nil
}

// OnCustomDay reports whether the weekday is one of the habit's custom days.
func (h *Habit) OnCustomDay(d time.Weekday) bool {
	for _, wd := range h.CustomDays {
		if wd == d {
			return true
		}
	}
	return false
}

// HabitCompletion is an append-only record of a habit done on a date.
// Completions are never edited after creation; deletion is the only
// permitted removal.
type HabitCompletion struct {
	ID          string
	HabitID     string
	Date        time.Time
	CompletedAt time.Time
	Difficulty  *int // optional 1-5 self-report
}
