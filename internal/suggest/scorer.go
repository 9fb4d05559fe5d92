// Package suggest scores and ranks recipes against a set of soft filters
// and the cook's kitchen profile.
package suggest

import (
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
)

// baseScore is the neutral starting point before any adjustment.
const baseScore = 50.0

var comfortTags = map[string]bool{
	"comfort": true, "hearty": true, "cozy": true,
	"classic": true, "soup": true, "stew": true, "pasta": true,
}

var healthyTags = map[string]bool{
	"healthy": true, "light": true, "salad": true,
	"vegetable": true, "lean": true, "low-carb": true,
}

// ScoringInput bundles one recipe with the filters and profile context.
type ScoringInput struct {
	Recipe     *domain.Recipe
	MaxMinutes int // 0 = no time budget
	Mood       domain.Mood
	Course     domain.Course
	Allowed    map[Difficulty]bool
	Now        time.Time
}

// Difficulty aliases the domain type so callers of the scorer read naturally.
type Difficulty = domain.Difficulty

// ScoredRecipe is a recipe with its computed suitability score.
type ScoredRecipe struct {
	Recipe  *domain.Recipe
	Score   float64
	Reasons []contract.SuggestionReason
}

// Score computes the suitability score for one recipe. Every factor is an
// independent additive adjustment; the order of application never changes
// the sum.
func Score(input ScoringInput) ScoredRecipe {
	result := ScoredRecipe{Recipe: input.Recipe, Score: baseScore}

	factors := []func(ScoringInput) (float64, *contract.SuggestionReason){
		scoreTimeFit,
		scoreMood,
		scoreCourse,
		scoreFavorite,
		scoreRecency,
		scoreSkillGate,
		scoreRating,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

func scoreTimeFit(input ScoringInput) (float64, *contract.SuggestionReason) {
	if input.MaxMinutes <= 0 {
		return 0, nil
	}
	if input.Recipe.TotalTimeMin <= input.MaxMinutes {
		return 20, &contract.SuggestionReason{
			Code:        contract.ReasonTimeFit,
			Message:     fmt.Sprintf("Fits your %d-minute budget", input.MaxMinutes),
			WeightDelta: 20,
		}
	}
	return -30, &contract.SuggestionReason{
		Code:        contract.ReasonOverTime,
		Message:     fmt.Sprintf("Takes longer than %d minutes", input.MaxMinutes),
		WeightDelta: -30,
	}
}

func scoreMood(input ScoringInput) (float64, *contract.SuggestionReason) {
	r := input.Recipe
	switch input.Mood {
	case domain.MoodComfort:
		if r.HasAnyTag(comfortTags) {
			return 25, moodReason("Comfort food match", 25)
		}
	case domain.MoodHealthy:
		if r.HasAnyTag(healthyTags) {
			return 25, moodReason("Healthy match", 25)
		}
	case domain.MoodAdventurous:
		var delta float64
		switch {
		case r.TimesMade == 0:
			delta = 30
		case r.TimesMade < 3:
			delta = 15
		}
		// A challenging recipe earns the stretch bonus on top of novelty.
		if r.Difficulty == domain.DifficultyAdvanced || r.Difficulty == domain.DifficultyProject {
			delta += 15
		}
		if delta != 0 {
			return delta, moodReason("Something new to try", delta)
		}
	case domain.MoodEasy:
		switch r.Difficulty {
		case domain.DifficultyEasy:
			return 30, moodReason("Low-effort cooking", 30)
		case domain.DifficultyMedium:
			return 10, moodReason("Moderate effort", 10)
		}
	}
	return 0, nil
}

func moodReason(msg string, delta float64) *contract.SuggestionReason {
	return &contract.SuggestionReason{
		Code:        contract.ReasonMoodMatch,
		Message:     msg,
		WeightDelta: delta,
	}
}

func scoreCourse(input ScoringInput) (float64, *contract.SuggestionReason) {
	if input.Course == "" || !input.Recipe.HasCourse(input.Course) {
		return 0, nil
	}
	return 15, &contract.SuggestionReason{
		Code:        contract.ReasonCourseMatch,
		Message:     fmt.Sprintf("Filed under %s", input.Course),
		WeightDelta: 15,
	}
}

func scoreFavorite(input ScoringInput) (float64, *contract.SuggestionReason) {
	if !input.Recipe.IsFavorite {
		return 0, nil
	}
	return 10, &contract.SuggestionReason{
		Code:        contract.ReasonFavorite,
		Message:     "One of your favorites",
		WeightDelta: 10,
	}
}

func scoreRecency(input ScoringInput) (float64, *contract.SuggestionReason) {
	r := input.Recipe
	if r.LastMade == nil {
		return 0, nil
	}
	since := input.Now.Sub(*r.LastMade)
	switch {
	case since < 7*24*time.Hour:
		return -15, &contract.SuggestionReason{
			Code:        contract.ReasonMadeRecently,
			Message:     "Made within the last week",
			WeightDelta: -15,
		}
	case since < 14*24*time.Hour:
		return -5, &contract.SuggestionReason{
			Code:        contract.ReasonMadeRecently,
			Message:     "Made within the last two weeks",
			WeightDelta: -5,
		}
	}
	return 0, nil
}

func scoreSkillGate(input ScoringInput) (float64, *contract.SuggestionReason) {
	// A nil allowed set means the profile is unknown: no gate.
	if input.Allowed == nil || input.Allowed[input.Recipe.Difficulty] {
		return 0, nil
	}
	return -20, &contract.SuggestionReason{
		Code:        contract.ReasonSkillStretch,
		Message:     fmt.Sprintf("%s difficulty is above your usual range", input.Recipe.Difficulty),
		WeightDelta: -20,
	}
}

func scoreRating(input ScoringInput) (float64, *contract.SuggestionReason) {
	rating := input.Recipe.Rating
	if rating < 4 {
		return 0, nil
	}
	delta := float64(rating-3) * 10
	return delta, &contract.SuggestionReason{
		Code:        contract.ReasonHighlyRated,
		Message:     fmt.Sprintf("You rated this %d/5", rating),
		WeightDelta: delta,
	}
}
