package suggest

import (
	"testing"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)

func quickEasyRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:           "r-1",
		Name:         "Weeknight stir-fry",
		TotalTimeMin: 20,
		Difficulty:   domain.DifficultyEasy,
		Courses:      []domain.Course{domain.CourseDinner},
	}
}

func TestScore_WorkedExample(t *testing.T) {
	// Quick easy dinner recipe under a 30-minute budget with mood=easy:
	// 50 base + 20 time fit + 30 easy mood + 15 course = 115.
	r := quickEasyRecipe()
	got := Score(ScoringInput{
		Recipe:     r,
		MaxMinutes: 30,
		Mood:       domain.MoodEasy,
		Course:     domain.CourseDinner,
		Allowed:    map[Difficulty]bool{domain.DifficultyEasy: true},
		Now:        testNow,
	})
	assert.Equal(t, 115.0, got.Score)

	// Same recipe without a course entry scores 100.
	r.Courses = nil
	got = Score(ScoringInput{
		Recipe:     r,
		MaxMinutes: 30,
		Mood:       domain.MoodEasy,
		Course:     domain.CourseDinner,
		Allowed:    map[Difficulty]bool{domain.DifficultyEasy: true},
		Now:        testNow,
	})
	assert.Equal(t, 100.0, got.Score)
}

func TestScore_TimeBudget(t *testing.T) {
	r := quickEasyRecipe()
	r.TotalTimeMin = 45

	over := Score(ScoringInput{Recipe: r, MaxMinutes: 30, Now: testNow})
	assert.Equal(t, baseScore-30, over.Score)

	noBudget := Score(ScoringInput{Recipe: r, Now: testNow})
	assert.Equal(t, baseScore, noBudget.Score, "no budget set, no adjustment")
}

func TestScore_AdventurousNoveltyLadder(t *testing.T) {
	// 30 for never made, 15 for made once or twice, 0 from three on.
	for _, tc := range []struct {
		timesMade int
		want      float64
	}{
		{0, 30}, {1, 15}, {2, 15}, {3, 0}, {10, 0},
	} {
		r := quickEasyRecipe()
		r.TimesMade = tc.timesMade
		got := Score(ScoringInput{Recipe: r, Mood: domain.MoodAdventurous, Now: testNow})
		assert.Equal(t, baseScore+tc.want, got.Score, "timesMade=%d", tc.timesMade)
	}
}

func TestScore_AdventurousDifficultyStacksWithNovelty(t *testing.T) {
	r := quickEasyRecipe()
	r.Difficulty = domain.DifficultyProject
	got := Score(ScoringInput{Recipe: r, Mood: domain.MoodAdventurous, Now: testNow})
	assert.Equal(t, baseScore+30+15, got.Score, "both novelty and challenge bonuses apply")
}

func TestScore_MoodTags(t *testing.T) {
	r := quickEasyRecipe()
	r.Tags = []string{"stew", "winter"}
	got := Score(ScoringInput{Recipe: r, Mood: domain.MoodComfort, Now: testNow})
	assert.Equal(t, baseScore+25, got.Score)

	got = Score(ScoringInput{Recipe: r, Mood: domain.MoodHealthy, Now: testNow})
	assert.Equal(t, baseScore, got.Score, "no healthy tag, no bonus")
}

func TestScore_RecencyPenalty(t *testing.T) {
	for _, tc := range []struct {
		daysAgo int
		want    float64
	}{
		{2, -15}, {6, -15}, {8, -5}, {13, -5}, {20, 0},
	} {
		r := quickEasyRecipe()
		last := testNow.AddDate(0, 0, -tc.daysAgo)
		r.LastMade = &last
		got := Score(ScoringInput{Recipe: r, Now: testNow})
		assert.Equal(t, baseScore+tc.want, got.Score, "daysAgo=%d", tc.daysAgo)
	}
}

func TestScore_SkillGate(t *testing.T) {
	r := quickEasyRecipe()
	r.Difficulty = domain.DifficultyAdvanced

	beginner := map[Difficulty]bool{domain.DifficultyEasy: true}
	got := Score(ScoringInput{Recipe: r, Allowed: beginner, Now: testNow})
	assert.Equal(t, baseScore-20, got.Score)

	// Unknown profile disables the gate.
	got = Score(ScoringInput{Recipe: r, Allowed: nil, Now: testNow})
	assert.Equal(t, baseScore, got.Score)
}

func TestScore_RatingBoost(t *testing.T) {
	for _, tc := range []struct {
		rating int
		want   float64
	}{
		{0, 0}, {3, 0}, {4, 10}, {5, 20},
	} {
		r := quickEasyRecipe()
		r.Rating = tc.rating
		got := Score(ScoringInput{Recipe: r, Now: testNow})
		assert.Equal(t, baseScore+tc.want, got.Score, "rating=%d", tc.rating)
	}
}

func TestScore_FavoriteBonusAndReasons(t *testing.T) {
	r := quickEasyRecipe()
	r.IsFavorite = true
	got := Score(ScoringInput{Recipe: r, MaxMinutes: 30, Now: testNow})
	assert.Equal(t, baseScore+20+10, got.Score)

	require.Len(t, got.Reasons, 2)
	codes := []contract.SuggestionReasonCode{got.Reasons[0].Code, got.Reasons[1].Code}
	assert.Contains(t, codes, contract.ReasonTimeFit)
	assert.Contains(t, codes, contract.ReasonFavorite)
}
