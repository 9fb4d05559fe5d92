package contract

import "github.com/nholm/sundial/internal/domain"

// SuggestRequest carries the soft filters for a recipe suggestion run.
// Zero values mean "no preference" for that filter.
type SuggestRequest struct {
	MaxMinutes int // 0 = no time budget
	Mood       domain.Mood
	Course     domain.Course
	Limit      int // 0 = default shortlist size
}

// RankedRecipe is one scored suggestion with its scoring breakdown.
type RankedRecipe struct {
	Recipe  *domain.Recipe
	Score   float64
	Reasons []SuggestionReason
}

// SuggestResponse is the ranked shortlist.
type SuggestResponse struct {
	Suggestions []RankedRecipe
	Considered  int // candidate count before threshold/limit
}
