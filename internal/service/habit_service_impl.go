package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/schedule"
)

// ErrAlreadyLogged is returned when a habit completion already exists for
// the requested day. The completion log is append-only and holds at most
// one entry per habit per day.
var ErrAlreadyLogged = errors.New("habit already logged for that day")

type habitService struct {
	habits      repository.HabitRepo
	completions repository.CompletionRepo
}

func NewHabitService(habits repository.HabitRepo, completions repository.CompletionRepo) HabitService {
	return &habitService{habits: habits, completions: completions}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Status == "" {
		h.Status = domain.HabitActive
	}
	if h.TimeOfDay == "" {
		h.TimeOfDay = domain.TimeAnytime
	}
	if err := h.Validate(); err != nil {
		return err
	}
	return s.habits.Create(ctx, h)
}

func (s *habitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id)
}

func (s *habitService) List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error) {
	return s.habits.List(ctx, includeArchived)
}

func (s *habitService) Update(ctx context.Context, h *domain.Habit) error {
	if err := h.Validate(); err != nil {
		return err
	}
	h.UpdatedAt = time.Now().UTC()
	return s.habits.Update(ctx, h)
}

func (s *habitService) Pause(ctx context.Context, id string) error {
	return s.habits.SetStatus(ctx, id, domain.HabitPaused)
}

func (s *habitService) Resume(ctx context.Context, id string) error {
	return s.habits.SetStatus(ctx, id, domain.HabitActive)
}

func (s *habitService) Archive(ctx context.Context, id string) error {
	return s.habits.SetStatus(ctx, id, domain.HabitArchived)
}

func (s *habitService) Delete(ctx context.Context, id string) error {
	return s.habits.Delete(ctx, id)
}

func (s *habitService) LogCompletion(ctx context.Context, habitID string, date time.Time, difficulty *int) (*domain.HabitCompletion, error) {
	if difficulty != nil && (*difficulty < 1 || *difficulty > 5) {
		return nil, fmt.Errorf("difficulty must be between 1 and 5, got %d", *difficulty)
	}
	if _, err := s.habits.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	exists, err := s.completions.ExistsOn(ctx, habitID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyLogged
	}

	c := &domain.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Date:        date,
		CompletedAt: time.Now().UTC(),
		Difficulty:  difficulty,
	}
	if err := s.completions.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("logging completion: %w", err)
	}
	return c, nil
}

func (s *habitService) RemoveCompletion(ctx context.Context, completionID string) error {
	return s.completions.Delete(ctx, completionID)
}

func (s *habitService) Streak(ctx context.Context, habitID string, today time.Time) (int, error) {
	h, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return 0, err
	}
	completions, err := s.completions.ListByHabit(ctx, habitID)
	if err != nil {
		return 0, err
	}
	return schedule.CalculateStreak(h, completions, today), nil
}

func (s *habitService) SystemHealth(ctx context.Context, today time.Time) (int, error) {
	habits, err := s.habits.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	// The health window only looks back a week; fetch just that slice.
	completions, err := s.completions.ListSince(ctx, today.AddDate(0, 0, -7))
	if err != nil {
		return 0, err
	}
	return schedule.SystemHealth(habits, completions, today), nil
}
