package service

import (
	"context"
	"testing"

	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeService_CreateDerivesTotalTime(t *testing.T) {
	repos := setupRepos(t)
	svc := NewRecipeService(repos.recipes)
	ctx := context.Background()

	r := &domain.Recipe{
		Name:        "Fried rice",
		PrepTimeMin: 10,
		CookTimeMin: 15,
		Difficulty:  domain.DifficultyEasy,
	}
	require.NoError(t, svc.Create(ctx, r))
	assert.Equal(t, 25, r.TotalTimeMin)

	assert.Error(t, svc.Create(ctx, &domain.Recipe{}), "name is required")
}

func TestRecipeService_MarkMade(t *testing.T) {
	repos := setupRepos(t)
	svc := NewRecipeService(repos.recipes)
	ctx := context.Background()

	r := testutil.NewTestRecipe("Dal")
	require.NoError(t, repos.recipes.Create(ctx, r))

	require.NoError(t, svc.MarkMade(ctx, r.ID, testutil.FixtureNow))
	require.NoError(t, svc.MarkMade(ctx, r.ID, testutil.FixtureNow.AddDate(0, 0, 1)))

	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimesMade)
	require.NotNil(t, got.LastMade)
	assert.True(t, got.LastMade.After(testutil.FixtureNow))
}

func TestRecipeService_RateBounds(t *testing.T) {
	repos := setupRepos(t)
	svc := NewRecipeService(repos.recipes)
	ctx := context.Background()

	r := testutil.NewTestRecipe("Soup")
	require.NoError(t, repos.recipes.Create(ctx, r))

	assert.Error(t, svc.Rate(ctx, r.ID, 0))
	assert.Error(t, svc.Rate(ctx, r.ID, 6))
	require.NoError(t, svc.Rate(ctx, r.ID, 4))

	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
}

func TestRecipeService_SetFavorite(t *testing.T) {
	repos := setupRepos(t)
	svc := NewRecipeService(repos.recipes)
	ctx := context.Background()

	r := testutil.NewTestRecipe("Tacos")
	require.NoError(t, repos.recipes.Create(ctx, r))

	require.NoError(t, svc.SetFavorite(ctx, r.ID, true))
	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	require.NoError(t, svc.SetFavorite(ctx, r.ID, false))
	got, err = svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}
