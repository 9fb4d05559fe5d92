package suggest

import (
	"sort"
	"time"

	"github.com/nholm/sundial/internal/domain"
)

const (
	// scoreThreshold is the minimum score a recipe must exceed to appear
	// in the shortlist.
	scoreThreshold = 30.0
	// defaultShortlist is the suggestion count when the caller sets no limit.
	defaultShortlist = 6
)

// Filters are the soft preferences applied to every candidate.
type Filters struct {
	MaxMinutes int
	Mood       domain.Mood
	Course     domain.Course
	Limit      int
}

// Rank scores every candidate and returns the shortlist: score above the
// threshold, descending by score, capped at the limit. The sort is stable,
// so equal scores keep their input order and identical inputs always yield
// the identical list.
func Rank(recipes []*domain.Recipe, filters Filters, profile *domain.KitchenProfile, now time.Time) []ScoredRecipe {
	var allowed map[Difficulty]bool
	if profile != nil {
		allowed = profile.AllowedDifficulties()
	}

	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		s := Score(ScoringInput{
			Recipe:     r,
			MaxMinutes: filters.MaxMinutes,
			Mood:       filters.Mood,
			Course:     filters.Course,
			Allowed:    allowed,
			Now:        now,
		})
		if s.Score > scoreThreshold {
			scored = append(scored, s)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultShortlist
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
