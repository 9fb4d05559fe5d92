package domain

import (
	"fmt"
	"time"
)

// RoutineStep is one ordered step inside a routine.
type RoutineStep struct {
	ID          string
	RoutineID   string
	OrderIndex  int
	Title       string
	DurationMin int
}

// Routine is a multi-step recurring block (morning routine, shutdown
// ritual) scheduled by frequency and presented by time of day.
type Routine struct {
	ID        string
	Name      string
	Frequency Frequency // daily, weekdays or weekends only
	TimeOfDay TimeOfDay
	Steps     []RoutineStep
	Affinity  Affinity
	Status    RoutineStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks structural invariants before persistence.
func (r *Routine) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("routine name is required")
	}
	switch r.Frequency {
	case FreqDaily, FreqWeekdays, FreqWeekends:
	default:
		return fmt.Errorf("routine frequency must be daily, weekdays or weekends, got %q", r.Frequency)
	}
	if !ValidTimesOfDay[string(r.TimeOfDay)] {
		return fmt.Errorf("invalid time of day %q", r.TimeOfDay)
	}
	return nil
}

// TotalDurationMin sums the declared step durations.
func (r *Routine) TotalDurationMin() int {
	total := 0
	for _, s := range r.Steps {
		total += s.DurationMin
	}
	return total
}
