package service

import (
	"context"
	"testing"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/nholm/sundial/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_RanksAndReportsConsidered(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSuggestService(repos.recipes, repos.profiles)
	ctx := context.Background()

	fav := testutil.NewTestRecipe("Mac and cheese",
		testutil.WithTags("comfort"),
		testutil.WithRating(5),
	)
	fav.IsFavorite = true
	require.NoError(t, repos.recipes.Create(ctx, fav))
	require.NoError(t, repos.recipes.Create(ctx, testutil.NewTestRecipe("Plain toast")))

	resp, err := svc.Suggest(ctx, contract.SuggestRequest{
		MaxMinutes: 45,
		Mood:       domain.MoodComfort,
		Course:     domain.CourseDinner,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Considered)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "Mac and cheese", resp.Suggestions[0].Recipe.Name)
	assert.NotEmpty(t, resp.Suggestions[0].Reasons)
}

func TestSuggest_NoProfileMeansNoSkillGate(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSuggestService(repos.recipes, repos.profiles)
	ctx := context.Background()

	hard := testutil.NewTestRecipe("Croissants",
		testutil.WithDifficulty(domain.DifficultyProject),
		testutil.WithRating(5),
	)
	require.NoError(t, repos.recipes.Create(ctx, hard))

	resp, err := svc.Suggest(ctx, contract.SuggestRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1, "ambitious recipe survives without a profile")
	for _, reason := range resp.Suggestions[0].Reasons {
		assert.NotEqual(t, contract.ReasonSkillStretch, reason.Code)
	}
}

func TestSuggest_BeginnerProfileGatesHardRecipes(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSuggestService(repos.recipes, repos.profiles)
	ctx := context.Background()

	require.NoError(t, repos.profiles.Upsert(ctx, &domain.KitchenProfile{
		ExperienceLevel: domain.LevelBeginner,
	}))

	easy := testutil.NewTestRecipe("Omelette", testutil.WithRating(5))
	hard := testutil.NewTestRecipe("Croissants",
		testutil.WithDifficulty(domain.DifficultyProject),
		testutil.WithRating(5),
	)
	require.NoError(t, repos.recipes.Create(ctx, easy))
	require.NoError(t, repos.recipes.Create(ctx, hard))

	resp, err := svc.Suggest(ctx, contract.SuggestRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "Omelette", resp.Suggestions[0].Recipe.Name,
		"penalized recipe ranks below the one within reach")

	var stretched bool
	for _, reason := range resp.Suggestions[1].Reasons {
		if reason.Code == contract.ReasonSkillStretch {
			stretched = true
		}
	}
	assert.True(t, stretched)
}

func TestSuggest_DeterministicAcrossRuns(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSuggestService(repos.recipes, repos.profiles)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repos.recipes.Create(ctx, testutil.NewTestRecipe(name,
			testutil.WithRating(4))))
	}

	first, err := svc.Suggest(ctx, contract.SuggestRequest{})
	require.NoError(t, err)
	second, err := svc.Suggest(ctx, contract.SuggestRequest{})
	require.NoError(t, err)

	require.Equal(t, len(first.Suggestions), len(second.Suggestions))
	for i := range first.Suggestions {
		assert.Equal(t, first.Suggestions[i].Recipe.ID, second.Suggestions[i].Recipe.ID)
		assert.Equal(t, first.Suggestions[i].Score, second.Suggestions[i].Score)
	}
}
