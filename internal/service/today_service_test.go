package service

import (
	"context"
	"testing"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func todaySvc(repos testRepos) TodayService {
	return NewTodayService(repos.habits, repos.completions, repos.routines, repos.schedule)
}

func TestToday_UnmarkedWeekday(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Daily one")))
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Weekends only",
		testutil.WithFrequency(domain.FreqWeekends))))

	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: testutil.FixtureNow})
	require.NoError(t, err)
	assert.Equal(t, []domain.DayType{domain.DayRegular}, resp.DayTypes)
	require.Len(t, resp.Habits, 1)
	assert.Equal(t, "Daily one", resp.Habits[0].Habit.Name)
	assert.False(t, resp.Habits[0].DoneToday)
}

func TestToday_MarkedDayFiltersByAffinity(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.schedule.UpsertMarkedDate(ctx, domain.MarkedDate{
		Date:     testutil.FixtureNow,
		DayTypes: domain.NewDayTypeSet(domain.DayTravel),
	}))

	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Anywhere")))
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Home gym",
		testutil.WithAffinity(domain.DayRegular))))
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Hotel stretch",
		testutil.WithAffinity(domain.DayTravel))))

	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: testutil.FixtureNow})
	require.NoError(t, err)
	assert.Equal(t, domain.DayTravel, resp.PrimaryDayType())

	names := make([]string, 0, len(resp.Habits))
	for _, dh := range resp.Habits {
		names = append(names, dh.Habit.Name)
	}
	assert.ElementsMatch(t, []string{"Anywhere", "Hotel stretch"}, names)
}

func TestToday_ResolvesOverridesForPrimaryType(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.schedule.UpsertMarkedDate(ctx, domain.MarkedDate{
		Date:     testutil.FixtureNow,
		DayTypes: domain.NewDayTypeSet(domain.DayTravel),
	}))

	evening := domain.TimeEvening
	cue := "after hotel check-in"
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Stretch",
		testutil.WithOverride(domain.DayTravel, domain.DayTypeOverride{
			TimeOfDay: &evening,
			CueValue:  &cue,
		}))))

	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: testutil.FixtureNow})
	require.NoError(t, err)
	require.Len(t, resp.Habits, 1)
	assert.Equal(t, domain.TimeEvening, resp.Habits[0].TimeOfDay)
	assert.Equal(t, "after hotel check-in", resp.Habits[0].Cue.Value)

	// The stored habit keeps its base schedule.
	stored, err := repos.habits.GetByID(ctx, resp.Habits[0].Habit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimeMorning, stored.TimeOfDay)
	assert.Equal(t, "after waking", stored.Cue.Value)
}

func TestToday_DisabledSchedulingIgnoresAffinity(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.schedule.SetEnabled(ctx, false))
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Home gym",
		testutil.WithAffinity(domain.DayRegular))))

	// Saturday: a restricted habit is still due because affinity is off.
	saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: saturday})
	require.NoError(t, err)
	require.Len(t, resp.Habits, 1)
}

func TestToday_StreakAndDoneFlags(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Run")
	require.NoError(t, repos.habits.Create(ctx, h))
	require.NoError(t, repos.completions.Create(ctx, testutil.NewTestCompletion(h.ID, testutil.FixtureNow)))
	require.NoError(t, repos.completions.Create(ctx, testutil.NewTestCompletion(h.ID, testutil.FixtureNow.AddDate(0, 0, -1))))

	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: testutil.FixtureNow})
	require.NoError(t, err)
	require.Len(t, resp.Habits, 1)
	assert.True(t, resp.Habits[0].DoneToday)
	assert.Equal(t, 2, resp.Habits[0].Streak)
	// Daily habit, 7 expected over the trailing week, 2 done: round(100*2/7).
	assert.Equal(t, 29, resp.Health)
}

func TestToday_HabitsAndRoutinesInTimeOrder(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Night habit",
		testutil.WithTimeOfDay(domain.TimeNight))))
	require.NoError(t, repos.habits.Create(ctx, testutil.NewTestHabit("Morning habit",
		testutil.WithTimeOfDay(domain.TimeMorning))))

	require.NoError(t, repos.routines.Create(ctx, testutil.NewTestRoutine("Wind down",
		testutil.WithRoutineTimeOfDay(domain.TimeEvening))))
	require.NoError(t, repos.routines.Create(ctx, testutil.NewTestRoutine("Wake up",
		testutil.WithRoutineTimeOfDay(domain.TimeMorning))))

	resp, err := todaySvc(repos).Today(ctx, contract.TodayRequest{Date: testutil.FixtureNow})
	require.NoError(t, err)
	require.Len(t, resp.Habits, 2)
	assert.Equal(t, "Morning habit", resp.Habits[0].Habit.Name)
	require.Len(t, resp.Routines, 2)
	assert.Equal(t, "Wake up", resp.Routines[0].Name)
}
