package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	habits, err := app.Habits.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(habits))
	names := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
		names[i] = h.Name
	}
	return resolveID("habit", input, ids, names)
}

func parseWeekdays(spec string) ([]time.Weekday, error) {
	lookup := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		day, ok := lookup[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q (use mon,tue,...)", part)
		}
		days = append(days, day)
	}
	return days, nil
}

func parseDayTypes(values []string) []domain.DayType {
	var types []domain.DayType
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			types = append(types, domain.DayType(v))
		}
	}
	return types
}

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habit loops",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitDoneCmd(app),
		newHabitStreakCmd(app),
		newHabitPauseCmd(app),
		newHabitResumeCmd(app),
		newHabitArchiveCmd(app),
		newHabitRemoveCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var (
		name, cueKind, cueValue, response, reward string
		freq, timeOfDay, daysSpec                 string
		onTypes                                   []string
		interactive                               bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a habit loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.Habit{
				Name:      name,
				Cue:       domain.Cue{Kind: cueKind, Value: cueValue},
				Response:  response,
				Reward:    reward,
				Frequency: domain.Frequency(freq),
				TimeOfDay: domain.TimeOfDay(timeOfDay),
				Affinity:  domain.RestrictedTo(parseDayTypes(onTypes)...),
			}

			if interactive {
				if !app.Interactive {
					return fmt.Errorf("--interactive needs a terminal")
				}
				if err := runHabitForm(h); err != nil {
					return err
				}
			}

			if daysSpec != "" {
				days, err := parseWeekdays(daysSpec)
				if err != nil {
					return err
				}
				h.CustomDays = days
			}

			if err := app.Habits.Create(context.Background(), h); err != nil {
				return err
			}
			fmt.Printf("Created habit %s [%s]\n", h.Name, formatter.TruncID(h.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Habit name")
	cmd.Flags().StringVar(&cueKind, "cue-kind", "time", "Cue kind (time, event, location)")
	cmd.Flags().StringVar(&cueValue, "cue", "", "Cue description, e.g. 'after morning coffee'")
	cmd.Flags().StringVar(&response, "response", "", "The action itself")
	cmd.Flags().StringVar(&reward, "reward", "", "The payoff to note")
	cmd.Flags().StringVar(&freq, "freq", "daily", "daily, weekdays, weekends, weekly or custom")
	cmd.Flags().StringVar(&daysSpec, "days", "", "Weekdays for custom frequency (mon,wed,fri)")
	cmd.Flags().StringVar(&timeOfDay, "time", "anytime", "morning, afternoon, evening, night or anytime")
	cmd.Flags().StringSliceVar(&onTypes, "on", nil, "Restrict to day types (travel, sick, ...); empty = all days")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the habit in a form")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println("No habits yet. Start with: sundial habit add")
				return nil
			}
			fmt.Println(formatter.FormatHabitList(habits))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived habits")

	return cmd
}

func newHabitDoneCmd(app *App) *cobra.Command {
	var dateStr string
	var difficulty int

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Log a habit completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}

			date := time.Now().UTC()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}

			var diff *int
			if cmd.Flags().Changed("difficulty") {
				diff = &difficulty
			}

			if _, err := app.Habits.LogCompletion(ctx, habitID, date, diff); err != nil {
				return err
			}

			streak, err := app.Habits.Streak(ctx, habitID, date)
			if err != nil {
				return err
			}
			fmt.Printf("Done. Streak: %s\n", formatter.StreakBadge(streak))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Completion date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "How hard it felt, 1 (easy) to 5 (brutal)")

	return cmd
}

func newHabitStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak ID",
		Short: "Show a habit's current streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			streak, err := app.Habits.Streak(ctx, habitID, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StreakBadge(streak))
			return nil
		},
	}
}

func newHabitPauseCmd(app *App) *cobra.Command {
	return habitStatusCmd(app, "pause", "Pause a habit", app.Habits.Pause)
}

func newHabitResumeCmd(app *App) *cobra.Command {
	return habitStatusCmd(app, "resume", "Resume a paused habit", app.Habits.Resume)
}

func newHabitArchiveCmd(app *App) *cobra.Command {
	return habitStatusCmd(app, "archive", "Archive a habit", app.Habits.Archive)
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return habitStatusCmd(app, "rm", "Delete a habit and its log", app.Habits.Delete)
}

func habitStatusCmd(app *App, use, short string, action func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return action(ctx, habitID)
		},
	}
}
