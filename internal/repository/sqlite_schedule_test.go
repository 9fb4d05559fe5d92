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

func TestScheduleRepo_LoadDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled, "scheduling is on until explicitly disabled")
	assert.Empty(t, cfg.MarkedDates)
	assert.Empty(t, cfg.CustomDayTypes)
}

func TestScheduleRepo_MarkAndUnmarkDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	md := domain.MarkedDate{
		Date:     date,
		DayTypes: domain.NewDayTypeSet(domain.DayTravel, domain.DayDeepWork),
	}
	require.NoError(t, repo.UpsertMarkedDate(ctx, md))

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	set, ok := cfg.Marked(date)
	require.True(t, ok)
	assert.ElementsMatch(t, []domain.DayType{domain.DayTravel, domain.DayDeepWork}, set.Sorted())

	// Remarking the same date replaces the set rather than merging.
	md.DayTypes = domain.NewDayTypeSet(domain.DaySick)
	require.NoError(t, repo.UpsertMarkedDate(ctx, md))
	cfg, err = repo.Load(ctx)
	require.NoError(t, err)
	set, _ = cfg.Marked(date)
	assert.Equal(t, []domain.DayType{domain.DaySick}, set.Sorted())

	require.NoError(t, repo.DeleteMarkedDate(ctx, date))
	cfg, err = repo.Load(ctx)
	require.NoError(t, err)
	_, ok = cfg.Marked(date)
	assert.False(t, ok)
}

func TestScheduleRepo_RejectsEmptyDayTypeSet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	err := repo.UpsertMarkedDate(ctx, domain.MarkedDate{
		Date:     time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		DayTypes: domain.NewDayTypeSet(),
	})
	assert.Error(t, err)
}

func TestScheduleRepo_CustomDayTypes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	def := domain.CustomDayTypeDef{Key: "conference", Label: "Conference", Icon: "🎤", Color: "#8844ff"}
	require.NoError(t, repo.CreateCustomDayType(ctx, def))

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	got, ok := cfg.CustomDayType("conference")
	require.True(t, ok)
	assert.Equal(t, "Conference", got.Label)

	require.NoError(t, repo.DeleteCustomDayType(ctx, "conference"))
	cfg, err = repo.Load(ctx)
	require.NoError(t, err)
	_, ok = cfg.CustomDayType("conference")
	assert.False(t, ok)
}

func TestScheduleRepo_SetEnabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetEnabled(ctx, false))
	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)

	require.NoError(t, repo.SetEnabled(ctx, true))
	cfg, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
}
