package repository

import (
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

// ErrNotFound reports that a requested record does not exist. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("not found")

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. NULL, empty and malformed values all map to nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite value: NULL for
// nil, else the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeDayTypes flattens an affinity into its stored CSV form. The open
// affinity stores as the empty string.
func encodeDayTypes(a domain.Affinity) string {
	if !a.IsRestricted() {
		return ""
	}
	types := a.Types().Sorted()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// decodeDayTypes restores an affinity from its CSV form.
func decodeDayTypes(s string) domain.Affinity {
	if s == "" {
		return domain.AllDayTypes()
	}
	var types []domain.DayType
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			types = append(types, domain.DayType(part))
		}
	}
	return domain.RestrictedTo(types...)
}

// encodeSet flattens a day-type set to sorted CSV.
func encodeSet(s domain.DayTypeSet) string {
	types := s.Sorted()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// decodeSet restores a day-type set from CSV.
func decodeSet(s string) domain.DayTypeSet {
	set := domain.NewDayTypeSet()
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			set.Add(domain.DayType(part))
		}
	}
	return set
}

// encodeWeekdays flattens weekdays to CSV of integers (0 = Sunday).
func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	sorted := append([]time.Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// decodeWeekdays restores weekdays from CSV.
func decodeWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}

// encodeStrings joins a plain string list to CSV.
func encodeStrings(parts []string) string {
	return strings.Join(parts, ",")
}

// decodeStrings splits CSV back into a list, dropping empties.
func decodeStrings(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// encodeCourses flattens a course list to CSV.
func encodeCourses(courses []domain.Course) string {
	parts := make([]string, len(courses))
	for i, c := range courses {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// decodeCourses restores a course list from CSV.
func decodeCourses(s string) []domain.Course {
	var out []domain.Course
	for _, part := range decodeStrings(s) {
		out = append(out, domain.Course(part))
	}
	return out
}
