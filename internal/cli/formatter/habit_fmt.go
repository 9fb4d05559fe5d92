package formatter

import (
	"fmt"
	"strings"

	"github.com/nholm/sundial/internal/domain"
)

// FormatHabitList formats habits as a table.
func FormatHabitList(habits []*domain.Habit) string {
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		status := string(h.Status)
		if h.Status == domain.HabitPaused {
			status = StyleYellow.Render(status)
		} else if h.Status == domain.HabitArchived {
			status = StyleDim.Render(status)
		}
		rows = append(rows, []string{
			Dim(TruncID(h.ID)),
			StyleFg.Render(h.Name),
			string(h.Frequency),
			string(h.TimeOfDay),
			affinityLabel(h.Affinity),
			status,
		})
	}
	return RenderTable([]string{"ID", "Habit", "Frequency", "When", "Day types", "Status"}, rows)
}

// FormatRoutineList formats routines as a table.
func FormatRoutineList(routines []*domain.Routine) string {
	rows := make([][]string, 0, len(routines))
	for _, rt := range routines {
		rows = append(rows, []string{
			Dim(TruncID(rt.ID)),
			StyleFg.Render(rt.Name),
			string(rt.Frequency),
			string(rt.TimeOfDay),
			fmt.Sprintf("%d steps", len(rt.Steps)),
			FormatMinutes(rt.TotalDurationMin()),
		})
	}
	return RenderTable([]string{"ID", "Routine", "Frequency", "When", "Steps", "Time"}, rows)
}

// FormatRecipeList formats recipes as a table.
func FormatRecipeList(recipes []*domain.Recipe) string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		fav := ""
		if r.IsFavorite {
			fav = StyleYellow.Render("★")
		}
		rating := Dim("unrated")
		if r.Rating > 0 {
			rating = StyleYellow.Render(strings.Repeat("★", r.Rating))
		}
		rows = append(rows, []string{
			Dim(TruncID(r.ID)),
			StyleFg.Render(r.Name) + fav,
			FormatMinutes(r.TotalTimeMin),
			string(r.Difficulty),
			rating,
			fmt.Sprintf("%d×", r.TimesMade),
		})
	}
	return RenderTable([]string{"ID", "Recipe", "Time", "Difficulty", "Rating", "Made"}, rows)
}

func affinityLabel(a domain.Affinity) string {
	if !a.IsRestricted() {
		return Dim("any")
	}
	types := a.Types().Sorted()
	labels := make([]string, 0, len(types))
	for _, dt := range types {
		labels = append(labels, string(dt))
	}
	return strings.Join(labels, ",")
}
