package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
)

func sundialHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func timeOfDayOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Anytime", string(domain.TimeAnytime)),
		huh.NewOption("Morning", string(domain.TimeMorning)),
		huh.NewOption("Afternoon", string(domain.TimeAfternoon)),
		huh.NewOption("Evening", string(domain.TimeEvening)),
		huh.NewOption("Night", string(domain.TimeNight)),
	}
}

func dayTypeOptions() []huh.Option[string] {
	defs := domain.BuiltinDayTypes()
	opts := make([]huh.Option[string], 0, len(defs))
	for _, def := range defs {
		opts = append(opts, huh.NewOption(def.Label, string(def.Key)))
	}
	return opts
}

// runHabitForm walks the habit loop fields in a form, writing the answers
// into h. Flags already set act as prefilled defaults.
func runHabitForm(h *domain.Habit) error {
	freq := string(h.Frequency)
	if freq == "" {
		freq = string(domain.FreqDaily)
	}
	timeOfDay := string(h.TimeOfDay)
	if timeOfDay == "" {
		timeOfDay = string(domain.TimeAnytime)
	}
	var dayTypes []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Placeholder("Evening stretch").
				Value(&h.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Cue (when does it trigger?)").
				Placeholder("after brushing teeth").
				Value(&h.Cue.Value),
			huh.NewInput().
				Title("Response (the action)").
				Placeholder("10 minutes of stretching").
				Value(&h.Response),
			huh.NewInput().
				Title("Reward (why keep it up?)").
				Placeholder("loose shoulders").
				Value(&h.Reward),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", string(domain.FreqDaily)),
					huh.NewOption("Weekdays", string(domain.FreqWeekdays)),
					huh.NewOption("Weekends", string(domain.FreqWeekends)),
					huh.NewOption("Once a week", string(domain.FreqWeekly)),
				).
				Value(&freq),
			huh.NewSelect[string]().
				Title("Time of day").
				Options(timeOfDayOptions()...).
				Value(&timeOfDay),
			huh.NewMultiSelect[string]().
				Title("Only on these day types (none = every day type)").
				Options(dayTypeOptions()...).
				Value(&dayTypes),
		),
	).WithTheme(sundialHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	h.Frequency = domain.Frequency(freq)
	h.TimeOfDay = domain.TimeOfDay(timeOfDay)
	types := make([]domain.DayType, 0, len(dayTypes))
	for _, dt := range dayTypes {
		types = append(types, domain.DayType(dt))
	}
	h.Affinity = domain.RestrictedTo(types...)
	if h.Cue.Value != "" && h.Cue.Kind == "" {
		h.Cue.Kind = "event"
	}
	return nil
}
