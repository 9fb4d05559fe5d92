package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/nholm/sundial/internal/domain"
)

// FixtureNow is the frozen reference time for fixtures: a Monday.
var FixtureNow = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

// Habit options
type HabitOption func(*domain.Habit)

func WithFrequency(f domain.Frequency, customDays ...time.Weekday) HabitOption {
	return func(h *domain.Habit) {
		h.Frequency = f
		h.CustomDays = customDays
	}
}

func WithAffinity(types ...domain.DayType) HabitOption {
	return func(h *domain.Habit) {
		h.Affinity = domain.RestrictedTo(types...)
	}
}

func WithHabitStatus(s domain.HabitStatus) HabitOption {
	return func(h *domain.Habit) {
		h.Status = s
	}
}

func WithTimeOfDay(t domain.TimeOfDay) HabitOption {
	return func(h *domain.Habit) {
		h.TimeOfDay = t
	}
}

func WithOverride(dayType domain.DayType, ov domain.DayTypeOverride) HabitOption {
	return func(h *domain.Habit) {
		if h.Overrides == nil {
			h.Overrides = make(map[domain.DayType]domain.DayTypeOverride)
		}
		h.Overrides[dayType] = ov
	}
}

// NewTestHabit builds a daily morning habit with sensible defaults.
func NewTestHabit(name string, opts ...HabitOption) *domain.Habit {
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Cue:       domain.Cue{Kind: "time", Value: "after waking"},
		Response:  "do it",
		Reward:    "feel good",
		Frequency: domain.FreqDaily,
		TimeOfDay: domain.TimeMorning,
		Status:    domain.HabitActive,
		CreatedAt: FixtureNow,
		UpdatedAt: FixtureNow,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewTestCompletion builds a completion for the habit on the given date.
func NewTestCompletion(habitID string, date time.Time) *domain.HabitCompletion {
	return &domain.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Date:        date,
		CompletedAt: date.Add(9 * time.Hour),
	}
}

// Routine options
type RoutineOption func(*domain.Routine)

func WithRoutineFrequency(f domain.Frequency) RoutineOption {
	return func(r *domain.Routine) {
		r.Frequency = f
	}
}

func WithRoutineTimeOfDay(t domain.TimeOfDay) RoutineOption {
	return func(r *domain.Routine) {
		r.TimeOfDay = t
	}
}

func WithRoutineAffinity(types ...domain.DayType) RoutineOption {
	return func(r *domain.Routine) {
		r.Affinity = domain.RestrictedTo(types...)
	}
}

func WithSteps(titles ...string) RoutineOption {
	return func(r *domain.Routine) {
		for i, title := range titles {
			r.Steps = append(r.Steps, domain.RoutineStep{
				ID:          uuid.New().String(),
				RoutineID:   r.ID,
				OrderIndex:  i,
				Title:       title,
				DurationMin: 5,
			})
		}
	}
}

// NewTestRoutine builds a daily morning routine.
func NewTestRoutine(name string, opts ...RoutineOption) *domain.Routine {
	r := &domain.Routine{
		ID:        uuid.New().String(),
		Name:      name,
		Frequency: domain.FreqDaily,
		TimeOfDay: domain.TimeMorning,
		Status:    domain.RoutineActive,
		CreatedAt: FixtureNow,
		UpdatedAt: FixtureNow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithTotalTime(min int) RecipeOption {
	return func(r *domain.Recipe) {
		r.TotalTimeMin = min
	}
}

func WithDifficulty(d domain.Difficulty) RecipeOption {
	return func(r *domain.Recipe) {
		r.Difficulty = d
	}
}

func WithTags(tags ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Tags = tags
	}
}

func WithCourses(courses ...domain.Course) RecipeOption {
	return func(r *domain.Recipe) {
		r.Courses = courses
	}
}

func WithRating(rating int) RecipeOption {
	return func(r *domain.Recipe) {
		r.Rating = rating
	}
}

func WithLastMade(t time.Time) RecipeOption {
	return func(r *domain.Recipe) {
		r.LastMade = &t
	}
}

// NewTestRecipe builds an easy 30-minute dinner recipe.
func NewTestRecipe(name string, opts ...RecipeOption) *domain.Recipe {
	r := &domain.Recipe{
		ID:           uuid.New().String(),
		Name:         name,
		PrepTimeMin:  10,
		CookTimeMin:  20,
		TotalTimeMin: 30,
		Difficulty:   domain.DifficultyEasy,
		Courses:      []domain.Course{domain.CourseDinner},
		CreatedAt:    FixtureNow,
		UpdatedAt:    FixtureNow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestWasteEntry builds a waste entry dated the given number of days
// before FixtureNow.
func NewTestWasteEntry(name string, daysAgo int, reason domain.WasteReason) *domain.WasteEntry {
	e := &domain.WasteEntry{
		ID:        uuid.New().String(),
		Quantity:  1,
		Unit:      "each",
		Reason:    reason,
		Date:      FixtureNow.AddDate(0, 0, -daysAgo),
		CreatedAt: FixtureNow,
	}
	e.SetIngredientName(name)
	return e
}
