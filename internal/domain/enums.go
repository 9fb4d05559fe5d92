package domain

type Frequency string

const (
	FreqDaily    Frequency = "daily"
	FreqWeekdays Frequency = "weekdays"
	FreqWeekends Frequency = "weekends"
	FreqWeekly   Frequency = "weekly"
	FreqCustom   Frequency = "custom"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeAnytime   TimeOfDay = "anytime"
)

// TimeOfDayRank returns the fixed presentation order for a time of day
// (lower = earlier). Unknown values sort last.
func TimeOfDayRank(t TimeOfDay) int {
	switch t {
	case TimeMorning:
		return 0
	case TimeAfternoon:
		return 1
	case TimeEvening:
		return 2
	case TimeNight:
		return 3
	case TimeAnytime:
		return 4
	default:
		return 5
	}
}

type HabitStatus string

const (
	HabitActive   HabitStatus = "active"
	HabitPaused   HabitStatus = "paused"
	HabitArchived HabitStatus = "archived"
)

type RoutineStatus string

const (
	RoutineActive   RoutineStatus = "active"
	RoutinePaused   RoutineStatus = "paused"
	RoutineArchived RoutineStatus = "archived"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
	DifficultyProject  Difficulty = "project"
)

type Course string

const (
	CourseBreakfast Course = "breakfast"
	CourseLunch     Course = "lunch"
	CourseDinner    Course = "dinner"
	CourseSnack     Course = "snack"
	CourseDessert   Course = "dessert"
)

type Mood string

const (
	MoodComfort     Mood = "comfort"
	MoodHealthy     Mood = "healthy"
	MoodAdventurous Mood = "adventurous"
	MoodEasy        Mood = "easy"
)

type ExperienceLevel string

const (
	LevelBeginner    ExperienceLevel = "beginner"
	LevelComfortable ExperienceLevel = "comfortable"
	LevelExperienced ExperienceLevel = "experienced"
	LevelAdvanced    ExperienceLevel = "advanced"
)

type WasteReason string

const (
	ReasonSpoiled    WasteReason = "spoiled"
	ReasonForgotten  WasteReason = "forgotten"
	ReasonOvercooked WasteReason = "overcooked"
	ReasonTooMuch    WasteReason = "too_much"
	ReasonDidNotEat  WasteReason = "did_not_eat"
	ReasonOther      WasteReason = "other"
)

// WasteReasons is the canonical set of waste reasons in display order.
// Waste stats report a count for every reason, logged or not.
var WasteReasons = []WasteReason{
	ReasonSpoiled, ReasonForgotten, ReasonOvercooked,
	ReasonTooMuch, ReasonDidNotEat, ReasonOther,
}

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"daily": true, "weekdays": true, "weekends": true,
	"weekly": true, "custom": true,
}

// ValidTimesOfDay is the canonical set of accepted time-of-day strings.
var ValidTimesOfDay = map[string]bool{
	"morning": true, "afternoon": true, "evening": true,
	"night": true, "anytime": true,
}

// ValidWasteReasons is the canonical set of accepted waste reason strings.
var ValidWasteReasons = map[string]bool{
	"spoiled": true, "forgotten": true, "overcooked": true,
	"too_much": true, "did_not_eat": true, "other": true,
}
