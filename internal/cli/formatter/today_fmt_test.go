package formatter

import (
	"testing"
	"time"

	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatToday_ShowsHabitsAndRoutines(t *testing.T) {
	resp := &contract.TodayResponse{
		Date:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DayTypes: []domain.DayType{domain.DayTravel},
		Habits: []contract.DueHabit{
			{
				Habit:     &domain.Habit{Name: "Stretch"},
				TimeOfDay: domain.TimeEvening,
				Cue:       domain.Cue{Kind: "event", Value: "after hotel check-in"},
				Streak:    4,
			},
			{
				Habit:     &domain.Habit{Name: "Read"},
				TimeOfDay: domain.TimeNight,
				DoneToday: true,
			},
		},
		Routines: []*domain.Routine{
			{
				Name:      "Morning reset",
				TimeOfDay: domain.TimeMorning,
				Steps:     []domain.RoutineStep{{Title: "Make bed", DurationMin: 5}},
			},
		},
		Health: 86,
	}

	out := FormatToday(resp)
	assert.Contains(t, out, "Monday, Jun 16")
	assert.Contains(t, out, "TRAVEL")
	assert.Contains(t, out, "86%")
	assert.Contains(t, out, "Stretch")
	assert.Contains(t, out, "after hotel check-in")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Morning reset")
	assert.Contains(t, out, "1 steps")
}

func TestFormatToday_EmptyDay(t *testing.T) {
	resp := &contract.TodayResponse{
		Date:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DayTypes: []domain.DayType{domain.DayRegular},
		Health:   100,
	}

	out := FormatToday(resp)
	assert.Contains(t, out, "Nothing due today.")
	assert.Contains(t, out, "No routines today.")
}

func TestFormatSuggestions_RendersReasons(t *testing.T) {
	resp := &contract.SuggestResponse{
		Considered: 12,
		Suggestions: []contract.RankedRecipe{
			{
				Recipe: &domain.Recipe{Name: "Mac and cheese", TotalTimeMin: 40},
				Score:  95,
				Reasons: []contract.SuggestionReason{
					{Code: contract.ReasonMoodMatch, Message: "comfort food for a comfort mood", WeightDelta: 25},
					{Code: contract.ReasonMadeRecently, Message: "made 3 days ago", WeightDelta: -15},
				},
			},
		},
	}

	out := FormatSuggestions(resp)
	// Header renders upper-cased.
	assert.Contains(t, out, "12 CONSIDERED")
	assert.Contains(t, out, "Mac and cheese")
	assert.Contains(t, out, "95 pts")
	assert.Contains(t, out, "comfort food for a comfort mood")
	assert.Contains(t, out, "made 3 days ago")
}

func TestFormatSuggestions_Empty(t *testing.T) {
	out := FormatSuggestions(&contract.SuggestResponse{Considered: 3})
	assert.Contains(t, out, "No recipe fits right now")
}

func TestFormatWasteStats(t *testing.T) {
	stats := contract.WasteStats{
		WindowMonths:       3,
		TotalEntries:       4,
		TotalEstimatedCost: 11.47,
		TopWastedIngredients: []contract.WastedIngredient{
			{NormalizedName: "spinach", DisplayName: "Spinach", Count: 3, LastWasted: time.Now()},
		},
		WasteByReason: map[domain.WasteReason]int{
			domain.ReasonSpoiled: 3, domain.ReasonForgotten: 1,
		},
	}

	out := FormatWasteStats(stats)
	assert.Contains(t, out, "LAST 3 MONTHS")
	assert.Contains(t, out, "$11.47")
	assert.Contains(t, out, "Spinach")
	assert.Contains(t, out, "spoiled")
}

func TestFormatWasteStats_Empty(t *testing.T) {
	out := FormatWasteStats(contract.WasteStats{WindowMonths: 3})
	assert.Contains(t, out, "Nothing logged in this window")
}
