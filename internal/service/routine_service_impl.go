package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/schedule"
)

type routineService struct {
	routines repository.RoutineRepo
	config   repository.ScheduleRepo
}

func NewRoutineService(routines repository.RoutineRepo, config repository.ScheduleRepo) RoutineService {
	return &routineService{routines: routines, config: config}
}

func (s *routineService) Create(ctx context.Context, r *domain.Routine) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = domain.RoutineActive
	}
	if r.TimeOfDay == "" {
		r.TimeOfDay = domain.TimeAnytime
	}
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = uuid.New().String()
		}
		r.Steps[i].RoutineID = r.ID
		r.Steps[i].OrderIndex = i
	}
	if err := r.Validate(); err != nil {
		return err
	}
	return s.routines.Create(ctx, r)
}

func (s *routineService) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	return s.routines.GetByID(ctx, id)
}

func (s *routineService) List(ctx context.Context, includeArchived bool) ([]*domain.Routine, error) {
	return s.routines.List(ctx, includeArchived)
}

func (s *routineService) Update(ctx context.Context, r *domain.Routine) error {
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = uuid.New().String()
		}
		r.Steps[i].RoutineID = r.ID
		r.Steps[i].OrderIndex = i
	}
	if err := r.Validate(); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return s.routines.Update(ctx, r)
}

func (s *routineService) Archive(ctx context.Context, id string) error {
	return s.routines.SetStatus(ctx, id, domain.RoutineArchived)
}

func (s *routineService) Delete(ctx context.Context, id string) error {
	return s.routines.Delete(ctx, id)
}

func (s *routineService) ListDueOn(ctx context.Context, date time.Time) ([]*domain.Routine, error) {
	routines, err := s.routines.List(ctx, false)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config.Load(ctx)
	if err != nil {
		return nil, err
	}
	// RoutinesDueOn returns its result already in time-of-day order.
	return schedule.RoutinesDueOn(routines, date, cfg), nil
}
