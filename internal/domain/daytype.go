package domain

import "sort"

// DayType tags a calendar day with a category used to filter which habits
// and routines apply. Built-in types are fixed; users may register custom
// types keyed by their own identifier strings.
type DayType string

const (
	DayRegular  DayType = "regular"
	DayWeekend  DayType = "weekend"
	DayTravel   DayType = "travel"
	DaySick     DayType = "sick"
	DayHoliday  DayType = "holiday"
	DayDeepWork DayType = "deep_work"
)

// DayTypeDef carries the display configuration for a day type.
type DayTypeDef struct {
	Key   DayType
	Label string
	Icon  string
	Color string
}

// CustomDayTypeDef is a user-registered day type. Key must be unique among
// custom types and must not collide with a built-in key.
type CustomDayTypeDef struct {
	Key   string
	Label string
	Icon  string
	Color string
}

// BuiltinDayTypes returns the immutable built-in day type definitions.
// Callers receive a fresh slice and may not alter the canonical set.
func BuiltinDayTypes() []DayTypeDef {
	return []DayTypeDef{
		{Key: DayRegular, Label: "Regular", Icon: "‧", Color: "#83a598"},
		{Key: DayWeekend, Label: "Weekend", Icon: "☼", Color: "#8ec07c"},
		{Key: DayTravel, Label: "Travel", Icon: "✈", Color: "#fabd2f"},
		{Key: DaySick, Label: "Sick", Icon: "✚", Color: "#fb4934"},
		{Key: DayHoliday, Label: "Holiday", Icon: "★", Color: "#d3869b"},
		{Key: DayDeepWork, Label: "Deep Work", Icon: "◆", Color: "#fe8019"},
	}
}

// IsBuiltinDayType reports whether key names one of the built-in day types.
func IsBuiltinDayType(key string) bool {
	for _, def := range BuiltinDayTypes() {
		if string(def.Key) == key {
			return true
		}
	}
	return false
}

// DayTypeSet is a set of day types with explicit union/intersection
// semantics. The multi-tag rule everywhere in the scheduler is "any overlap
// counts", so intersection tests are the primary operation.
type DayTypeSet map[DayType]struct{}

// NewDayTypeSet builds a set from the given types.
func NewDayTypeSet(types ...DayType) DayTypeSet {
	s := make(DayTypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

func (s DayTypeSet) Contains(t DayType) bool {
	_, ok := s[t]
	return ok
}

func (s DayTypeSet) Add(t DayType) {
	s[t] = struct{}{}
}

func (s DayTypeSet) Remove(t DayType) {
	delete(s, t)
}

func (s DayTypeSet) Len() int {
	return len(s)
}

// Intersects reports whether the two sets share at least one day type.
func (s DayTypeSet) Intersects(other DayTypeSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			return true
		}
	}
	return false
}

// Union returns a new set containing every type from both sets.
func (s DayTypeSet) Union(other DayTypeSet) DayTypeSet {
	out := make(DayTypeSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s DayTypeSet) Clone() DayTypeSet {
	out := make(DayTypeSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Sorted returns the set's members in lexical order, for deterministic
// persistence and display.
func (s DayTypeSet) Sorted() []DayType {
	out := make([]DayType, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
