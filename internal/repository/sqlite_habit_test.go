package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	evening := domain.TimeEvening
	hotelCue := "after hotel check-in"
	h := testutil.NewTestHabit("Stretch",
		testutil.WithAffinity(domain.DayTravel, domain.DayRegular),
		testutil.WithOverride(domain.DayTravel, domain.DayTypeOverride{
			TimeOfDay: &evening,
			CueValue:  &hotelCue,
		}),
	)
	require.NoError(t, repo.Create(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", got.Name)
	assert.Equal(t, domain.FreqDaily, got.Frequency)
	assert.True(t, got.Affinity.IsRestricted())
	assert.True(t, got.Affinity.Matches(domain.NewDayTypeSet(domain.DayTravel)))
	assert.False(t, got.Affinity.Matches(domain.NewDayTypeSet(domain.DaySick)))

	require.Contains(t, got.Overrides, domain.DayTravel)
	ov := got.Overrides[domain.DayTravel]
	require.NotNil(t, ov.TimeOfDay)
	assert.Equal(t, domain.TimeEvening, *ov.TimeOfDay)
	require.NotNil(t, ov.CueValue)
	assert.Equal(t, "after hotel check-in", *ov.CueValue)
}

func TestHabitRepo_OpenAffinityRoundTrips(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := testutil.NewTestHabit("Read")
	require.NoError(t, repo.Create(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, got.Affinity.IsRestricted(), "no stored day types means applies-always")
}

func TestHabitRepo_CustomDaysRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := testutil.NewTestHabit("Gym",
		testutil.WithFrequency(domain.FreqCustom, time.Wednesday, time.Monday))
	require.NoError(t, repo.Create(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, got.CustomDays)
}

func TestHabitRepo_ListActiveExcludesPausedAndArchived(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestHabit("Active")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestHabit("Paused",
		testutil.WithHabitStatus(domain.HabitPaused))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestHabit("Archived",
		testutil.WithHabitStatus(domain.HabitArchived))))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Name)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2, "default list hides archived only")

	withArchived, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, withArchived, 3)
}

func TestHabitRepo_UpdateReplacesOverrides(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	night := domain.TimeNight
	h := testutil.NewTestHabit("Journal",
		testutil.WithOverride(domain.DayTravel, domain.DayTypeOverride{TimeOfDay: &night}))
	require.NoError(t, repo.Create(ctx, h))

	h.Overrides = map[domain.DayType]domain.DayTypeOverride{
		domain.DaySick: {TimeOfDay: &night},
	}
	require.NoError(t, repo.Update(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Overrides, domain.DayTravel)
	assert.Contains(t, got.Overrides, domain.DaySick)
}

func TestHabitRepo_SetStatusAndNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := testutil.NewTestHabit("Meditate")
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.SetStatus(ctx, h.ID, domain.HabitPaused))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HabitPaused, got.Status)

	err = repo.SetStatus(ctx, "missing", domain.HabitPaused)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletionRepo_AppendListDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	habits := NewSQLiteHabitRepo(db)
	repo := NewSQLiteCompletionRepo(db)
	ctx := context.Background()

	h := testutil.NewTestHabit("Run")
	require.NoError(t, habits.Create(ctx, h))

	c1 := testutil.NewTestCompletion(h.ID, testutil.FixtureNow)
	c2 := testutil.NewTestCompletion(h.ID, testutil.FixtureNow.AddDate(0, 0, -1))
	require.NoError(t, repo.Create(ctx, c1))
	require.NoError(t, repo.Create(ctx, c2))

	list, err := repo.ListByHabit(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Date.After(list[1].Date), "newest first")

	ok, err := repo.ExistsOn(ctx, h.ID, testutil.FixtureNow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsOn(ctx, h.ID, testutil.FixtureNow.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Delete(ctx, c1.ID))
	list, err = repo.ListByHabit(ctx, h.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCompletionRepo_ListSinceWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	habits := NewSQLiteHabitRepo(db)
	repo := NewSQLiteCompletionRepo(db)
	ctx := context.Background()

	h := testutil.NewTestHabit("Run")
	require.NoError(t, habits.Create(ctx, h))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletion(h.ID, testutil.FixtureNow)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletion(h.ID, testutil.FixtureNow.AddDate(0, 0, -30))))

	recent, err := repo.ListSince(ctx, testutil.FixtureNow.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
