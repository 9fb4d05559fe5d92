package repository

import (
	"context"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error)
	ListActive(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	SetStatus(ctx context.Context, id string, status domain.HabitStatus) error
	Delete(ctx context.Context, id string) error
}

// CompletionRepo stores the append-only habit completion log. There is
// deliberately no update operation: completions are created, listed and
// deleted, never edited.
type CompletionRepo interface {
	Create(ctx context.Context, c *domain.HabitCompletion) error
	ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitCompletion, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.HabitCompletion, error)
	ExistsOn(ctx context.Context, habitID string, date time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type RoutineRepo interface {
	Create(ctx context.Context, r *domain.Routine) error
	GetByID(ctx context.Context, id string) (*domain.Routine, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Routine, error)
	Update(ctx context.Context, r *domain.Routine) error
	SetStatus(ctx context.Context, id string, status domain.RoutineStatus) error
	Delete(ctx context.Context, id string) error
}

type RecipeRepo interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id string) error
}

type WasteRepo interface {
	Create(ctx context.Context, e *domain.WasteEntry) error
	GetByID(ctx context.Context, id string) (*domain.WasteEntry, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.WasteEntry, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleRepo persists the smart-scheduling state: marked dates, custom
// day types and the enabled flag. Load returns the full config snapshot.
type ScheduleRepo interface {
	Load(ctx context.Context) (domain.ScheduleConfig, error)
	UpsertMarkedDate(ctx context.Context, md domain.MarkedDate) error
	DeleteMarkedDate(ctx context.Context, date time.Time) error
	CreateCustomDayType(ctx context.Context, def domain.CustomDayTypeDef) error
	DeleteCustomDayType(ctx context.Context, key string) error
	SetEnabled(ctx context.Context, enabled bool) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.KitchenProfile, error)
	Upsert(ctx context.Context, p *domain.KitchenProfile) error
}
