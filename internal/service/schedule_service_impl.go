package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/schedule"
)

type scheduleService struct {
	config repository.ScheduleRepo
	uow    db.UnitOfWork
}

func NewScheduleService(config repository.ScheduleRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{config: config, uow: uow}
}

func (s *scheduleService) Snapshot(ctx context.Context) (domain.ScheduleConfig, error) {
	return s.config.Load(ctx)
}

// MarkDate replaces the date's day type set. Marking with an empty set is
// the same as unmarking: the row is pruned so a marked date always
// carries at least one type.
func (s *scheduleService) MarkDate(ctx context.Context, date time.Time, types []domain.DayType) error {
	set := domain.NewDayTypeSet(types...)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfig := repository.NewSQLiteScheduleRepo(tx)
		if set.Len() == 0 {
			return txConfig.DeleteMarkedDate(ctx, date)
		}
		cfg, err := txConfig.Load(ctx)
		if err != nil {
			return err
		}
		for _, dt := range set.Sorted() {
			if !knownDayType(dt, cfg) {
				return fmt.Errorf("unknown day type %q", dt)
			}
		}
		return txConfig.UpsertMarkedDate(ctx, domain.MarkedDate{Date: date, DayTypes: set})
	})
}

func (s *scheduleService) UnmarkDate(ctx context.Context, date time.Time) error {
	return s.config.DeleteMarkedDate(ctx, date)
}

func (s *scheduleService) AddCustomDayType(ctx context.Context, def domain.CustomDayTypeDef) error {
	if def.Key == "" {
		return fmt.Errorf("custom day type needs a key")
	}
	for _, builtin := range domain.BuiltinDayTypes() {
		if string(builtin.Key) == def.Key {
			return fmt.Errorf("day type %q is built in", def.Key)
		}
	}
	return s.config.CreateCustomDayType(ctx, def)
}

// RemoveCustomDayType deletes the definition and every reference to it:
// marked dates lose the type, and dates left with an empty set are
// pruned entirely. The whole cascade is one transaction.
func (s *scheduleService) RemoveCustomDayType(ctx context.Context, key string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfig := repository.NewSQLiteScheduleRepo(tx)
		cfg, err := txConfig.Load(ctx)
		if err != nil {
			return err
		}
		if _, ok := cfg.CustomDayType(key); !ok {
			return fmt.Errorf("custom day type %q: %w", key, repository.ErrNotFound)
		}

		removed := domain.DayType(key)
		for _, md := range cfg.MarkedDates {
			if !md.DayTypes.Contains(removed) {
				continue
			}
			remaining := md.DayTypes.Clone()
			remaining.Remove(removed)
			if remaining.Len() == 0 {
				if err := txConfig.DeleteMarkedDate(ctx, md.Date); err != nil {
					return err
				}
				continue
			}
			if err := txConfig.UpsertMarkedDate(ctx, domain.MarkedDate{Date: md.Date, DayTypes: remaining}); err != nil {
				return err
			}
		}
		return txConfig.DeleteCustomDayType(ctx, key)
	})
}

func (s *scheduleService) SetEnabled(ctx context.Context, enabled bool) error {
	return s.config.SetEnabled(ctx, enabled)
}

func (s *scheduleService) DayTypesFor(ctx context.Context, date time.Time) ([]domain.DayType, error) {
	cfg, err := s.config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.DayTypesFor(date, cfg), nil
}

func knownDayType(dt domain.DayType, cfg domain.ScheduleConfig) bool {
	for _, builtin := range domain.BuiltinDayTypes() {
		if builtin.Key == dt {
			return true
		}
	}
	_, ok := cfg.CustomDayType(string(dt))
	return ok
}
