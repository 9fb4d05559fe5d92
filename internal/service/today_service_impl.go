package service

import (
	"context"
	"sort"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/schedule"
)

type todayService struct {
	habits      repository.HabitRepo
	completions repository.CompletionRepo
	routines    repository.RoutineRepo
	config      repository.ScheduleRepo
	now         func() time.Time
}

func NewTodayService(
	habits repository.HabitRepo,
	completions repository.CompletionRepo,
	routines repository.RoutineRepo,
	config repository.ScheduleRepo,
) TodayService {
	return &todayService{
		habits:      habits,
		completions: completions,
		routines:    routines,
		config:      config,
		now:         time.Now,
	}
}

func (s *todayService) Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error) {
	date := req.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	cfg, err := s.config.Load(ctx)
	if err != nil {
		return nil, err
	}
	dayTypes := schedule.DayTypesFor(date, cfg)
	primary := dayTypes[0]

	habits, err := s.habits.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	due := s.dueHabits(habits, date, cfg)

	allCompletions, err := s.completions.ListSince(ctx, date.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	dueHabits := make([]contract.DueHabit, 0, len(due))
	for _, h := range due {
		completions, err := s.completions.ListByHabit(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		done, err := s.completions.ExistsOn(ctx, h.ID, date)
		if err != nil {
			return nil, err
		}
		dueHabits = append(dueHabits, contract.DueHabit{
			Habit:     h,
			TimeOfDay: schedule.EffectiveTimeOfDay(h, primary),
			Cue:       schedule.EffectiveCue(h, primary),
			Streak:    schedule.CalculateStreak(h, completions, date),
			DoneToday: done,
		})
	}
	sort.SliceStable(dueHabits, func(i, j int) bool {
		return domain.TimeOfDayRank(dueHabits[i].TimeOfDay) < domain.TimeOfDayRank(dueHabits[j].TimeOfDay)
	})

	routines, err := s.routines.List(ctx, false)
	if err != nil {
		return nil, err
	}
	// Already sorted by time of day.
	dueRoutines := schedule.RoutinesDueOn(routines, date, cfg)

	return &contract.TodayResponse{
		Date:     date,
		DayTypes: dayTypes,
		Habits:   dueHabits,
		Routines: dueRoutines,
		Health:   schedule.SystemHealth(habits, allCompletions, date),
	}, nil
}

// dueHabits applies both predicates when scheduling is on; with
// scheduling off, day-type affinity is ignored and frequency alone
// decides, matching the pre-scheduling behavior.
func (s *todayService) dueHabits(habits []*domain.Habit, date time.Time, cfg domain.ScheduleConfig) []*domain.Habit {
	if cfg.Enabled {
		return schedule.HabitsDueOn(habits, date, schedule.ActiveSet(date, cfg))
	}
	var due []*domain.Habit
	for _, h := range habits {
		if h.Status == domain.HabitActive && schedule.FrequencyMatches(h, date) {
			due = append(due, h)
		}
	}
	return due
}
