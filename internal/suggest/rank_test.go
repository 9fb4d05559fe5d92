package suggest

import (
	"fmt"
	"testing"

	"github.com/nholm/sundial/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedRecipe(name string, totalMin int) *domain.Recipe {
	return &domain.Recipe{
		ID:           "id-" + name,
		Name:         name,
		TotalTimeMin: totalMin,
		Difficulty:   domain.DifficultyEasy,
	}
}

func TestRank_ThresholdExcludesLowScores(t *testing.T) {
	// 50 - 30 (over time) = 20, below the threshold of 30.
	slow := namedRecipe("slow", 120)
	fast := namedRecipe("fast", 15)

	got := Rank([]*domain.Recipe{slow, fast}, Filters{MaxMinutes: 30}, nil, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "fast", got[0].Recipe.Name)
}

func TestRank_TopSixDescending(t *testing.T) {
	var recipes []*domain.Recipe
	for i := 0; i < 10; i++ {
		r := namedRecipe(fmt.Sprintf("r%d", i), 20)
		r.Rating = 0
		if i < 3 {
			r.Rating = 5 // 70
		} else if i < 6 {
			r.Rating = 4 // 60
		}
		recipes = append(recipes, r)
	}

	got := Rank(recipes, Filters{}, nil, testNow)
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "descending order")
	}
	assert.Equal(t, 70.0, got[0].Score)
}

func TestRank_Deterministic(t *testing.T) {
	recipes := []*domain.Recipe{
		namedRecipe("a", 20), namedRecipe("b", 20), namedRecipe("c", 20),
	}
	first := Rank(recipes, Filters{}, nil, testNow)
	second := Rank(recipes, Filters{}, nil, testNow)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Recipe.ID, second[i].Recipe.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	recipes := []*domain.Recipe{
		namedRecipe("first", 20), namedRecipe("second", 20),
	}
	got := Rank(recipes, Filters{}, nil, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Recipe.Name)
	assert.Equal(t, "second", got[1].Recipe.Name)
}

func TestRank_ProfileGatesDifficulty(t *testing.T) {
	project := namedRecipe("showpiece", 20)
	project.Difficulty = domain.DifficultyProject
	easy := namedRecipe("simple", 20)

	beginner := &domain.KitchenProfile{ExperienceLevel: domain.LevelBeginner}
	got := Rank([]*domain.Recipe{project, easy}, Filters{}, beginner, testNow)

	// The gated recipe scores exactly 30, which does not clear the
	// strictly-greater threshold.
	require.Len(t, got, 1)
	assert.Equal(t, "simple", got[0].Recipe.Name)
}

func TestRank_CustomLimit(t *testing.T) {
	var recipes []*domain.Recipe
	for i := 0; i < 5; i++ {
		recipes = append(recipes, namedRecipe(fmt.Sprintf("r%d", i), 20))
	}
	got := Rank(recipes, Filters{Limit: 2}, nil, testNow)
	assert.Len(t, got, 2)
}
