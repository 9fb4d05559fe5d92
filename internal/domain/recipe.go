package domain

import "time"

// Recipe is a cookable dish with the metadata the suggestion scorer reads.
type Recipe struct {
	ID   string
	Name string

	PrepTimeMin  int
	CookTimeMin  int
	TotalTimeMin int // expected to equal prep+cook, but drift is tolerated

	Difficulty Difficulty
	Courses    []Course
	Tags       []string

	TimesMade  int
	LastMade   *time.Time
	Rating     int // 1-5, 0 = unrated
	IsFavorite bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCourse reports whether the recipe is filed under the given meal slot.
func (r *Recipe) HasCourse(c Course) bool {
	for _, rc := range r.Courses {
		if rc == c {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the recipe carries at least one of the tags.
func (r *Recipe) HasAnyTag(tags map[string]bool) bool {
	for _, t := range r.Tags {
		if tags[t] {
			return true
		}
	}
	return false
}

// KitchenProfile captures the cook's declared experience level.
type KitchenProfile struct {
	ID              string
	ExperienceLevel ExperienceLevel
}

// AllowedDifficulties maps an experience level to the difficulty set the
// scorer treats as within reach. An unknown level returns nil, which
// disables the skill gate entirely.
func (p *KitchenProfile) AllowedDifficulties() map[Difficulty]bool {
	switch p.ExperienceLevel {
	case LevelBeginner:
		return map[Difficulty]bool{DifficultyEasy: true}
	case LevelComfortable:
		return map[Difficulty]bool{DifficultyEasy: true, DifficultyMedium: true}
	case LevelExperienced:
		return map[Difficulty]bool{DifficultyEasy: true, DifficultyMedium: true, DifficultyAdvanced: true}
	case LevelAdvanced:
		return map[Difficulty]bool{DifficultyEasy: true, DifficultyMedium: true, DifficultyAdvanced: true, DifficultyProject: true}
	default:
		return nil
	}
}
