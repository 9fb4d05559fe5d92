package formatter

import (
	"fmt"
	"strings"

	"github.com/nholm/sundial/internal/contract"
)

// FormatToday formats the due-today view into a styled dashboard string.
func FormatToday(resp *contract.TodayResponse) string {
	var b strings.Builder

	badges := make([]string, 0, len(resp.DayTypes))
	for _, dt := range resp.DayTypes {
		badges = append(badges, DayTypeBadge(dt))
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		Bold(resp.Date.Format("Monday, Jan 2")),
		strings.Join(badges, " "),
		HealthIndicator(resp.Health),
	))

	b.WriteString(Header("Habits"))
	b.WriteString("\n")
	if len(resp.Habits) == 0 {
		b.WriteString(Dim("Nothing due today."))
		b.WriteString("\n")
	} else {
		for _, dh := range resp.Habits {
			check := StyleDim.Render("[ ]")
			name := StyleFg.Render(dh.Habit.Name)
			if dh.DoneToday {
				check = StyleGreen.Render("[x]")
				name = StyleDim.Render(dh.Habit.Name)
			}
			b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
				check,
				name,
				StyleBlue.Render(string(dh.TimeOfDay)),
				StreakBadge(dh.Streak),
			))
			if dh.Cue.Value != "" {
				b.WriteString(fmt.Sprintf("    %s\n", Dim(dh.Cue.Value)))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Routines"))
	b.WriteString("\n")
	if len(resp.Routines) == 0 {
		b.WriteString(Dim("No routines today."))
		b.WriteString("\n")
	} else {
		for _, rt := range resp.Routines {
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				StylePurple.Render("▸"),
				StyleFg.Render(rt.Name),
				Dim(fmt.Sprintf("%s · %d steps · %s",
					rt.TimeOfDay, len(rt.Steps), FormatMinutes(rt.TotalDurationMin()))),
			))
		}
	}

	return b.String()
}
