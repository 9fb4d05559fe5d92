package service

import (
	"context"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
)

type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	LogCompletion(ctx context.Context, habitID string, date time.Time, difficulty *int) (*domain.HabitCompletion, error)
	RemoveCompletion(ctx context.Context, completionID string) error
	Streak(ctx context.Context, habitID string, today time.Time) (int, error)
	SystemHealth(ctx context.Context, today time.Time) (int, error)
}

type RoutineService interface {
	Create(ctx context.Context, r *domain.Routine) error
	GetByID(ctx context.Context, id string) (*domain.Routine, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Routine, error)
	Update(ctx context.Context, r *domain.Routine) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListDueOn(ctx context.Context, date time.Time) ([]*domain.Routine, error)
}

type TodayService interface {
	Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error)
}

type SuggestService interface {
	Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error)
}

type WasteService interface {
	Log(ctx context.Context, e *domain.WasteEntry) error
	Stats(ctx context.Context, months int, now time.Time) (contract.WasteStats, error)
	Remove(ctx context.Context, id string) error
}

// ScheduleService owns all smart-scheduling mutations. Marking a date
// with an empty type set prunes the row instead of storing an empty mark.
type ScheduleService interface {
	Snapshot(ctx context.Context) (domain.ScheduleConfig, error)
	MarkDate(ctx context.Context, date time.Time, types []domain.DayType) error
	UnmarkDate(ctx context.Context, date time.Time) error
	AddCustomDayType(ctx context.Context, def domain.CustomDayTypeDef) error
	RemoveCustomDayType(ctx context.Context, key string) error
	SetEnabled(ctx context.Context, enabled bool) error
	DayTypesFor(ctx context.Context, date time.Time) ([]domain.DayType, error)
}

type RecipeService interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id string) error
	MarkMade(ctx context.Context, id string, when time.Time) error
	Rate(ctx context.Context, id string, rating int) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.KitchenProfile, error)
	SetExperienceLevel(ctx context.Context, level domain.ExperienceLevel) error
}
