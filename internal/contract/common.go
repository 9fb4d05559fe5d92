// Package contract holds the request/response shapes exchanged between
// the service layer and its callers (CLI, board TUI).
package contract

type SuggestionReasonCode string

const (
	ReasonTimeFit        SuggestionReasonCode = "TIME_FIT"
	ReasonOverTime       SuggestionReasonCode = "OVER_TIME"
	ReasonMoodMatch      SuggestionReasonCode = "MOOD_MATCH"
	ReasonCourseMatch    SuggestionReasonCode = "COURSE_MATCH"
	ReasonFavorite       SuggestionReasonCode = "FAVORITE"
	ReasonMadeRecently   SuggestionReasonCode = "MADE_RECENTLY"
	ReasonSkillStretch   SuggestionReasonCode = "SKILL_STRETCH"
	ReasonHighlyRated    SuggestionReasonCode = "HIGHLY_RATED"
)

// SuggestionReason explains one scoring adjustment applied to a recipe.
type SuggestionReason struct {
	Code        SuggestionReasonCode
	Message     string
	WeightDelta float64
}
