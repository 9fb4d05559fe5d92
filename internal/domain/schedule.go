package domain

import "time"

// DateKey is the ISO date string (YYYY-MM-DD) used to key marked dates.
const DateKey = "2006-01-02"

// MarkedDate records the day types a user has pinned to a calendar date.
// A marked date always carries at least one type; an empty set means the
// date is unmarked and the record must not exist at all.
type MarkedDate struct {
	Date     time.Time
	DayTypes DayTypeSet
}

// ScheduleConfig is an immutable snapshot of the smart-scheduling state
// for one user. Resolvers take it by value and never mutate it; edits go
// through the schedule service, which persists and produces a new snapshot.
type ScheduleConfig struct {
	Enabled        bool
	MarkedDates    map[string]MarkedDate
	CustomDayTypes []CustomDayTypeDef
}

// EmptyScheduleConfig returns an enabled config with no marked dates.
func EmptyScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		Enabled:     true,
		MarkedDates: map[string]MarkedDate{},
	}
}

// Marked returns the marked day types for date, if any.
func (c ScheduleConfig) Marked(date time.Time) (DayTypeSet, bool) {
	md, ok := c.MarkedDates[date.Format(DateKey)]
	if !ok || md.DayTypes.Len() == 0 {
		return nil, false
	}
	return md.DayTypes, true
}

// CustomDayType looks up a registered custom type by key.
func (c ScheduleConfig) CustomDayType(key string) (CustomDayTypeDef, bool) {
	for _, def := range c.CustomDayTypes {
		if def.Key == key {
			return def, true
		}
	}
	return CustomDayTypeDef{}, false
}
