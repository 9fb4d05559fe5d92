package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Mark calendar days with day types",
	}

	cmd.AddCommand(
		newScheduleMarkCmd(app),
		newScheduleUnmarkCmd(app),
		newScheduleShowCmd(app),
		newScheduleTypesCmd(app),
		newScheduleEnableCmd(app, true),
		newScheduleEnableCmd(app, false),
	)

	return cmd
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

func newScheduleMarkCmd(app *App) *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "mark DATE",
		Short: "Mark a date with day types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			if err := app.Schedule.MarkDate(context.Background(), date, parseDayTypes(types)); err != nil {
				return err
			}
			fmt.Printf("Marked %s\n", date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&types, "as", nil, "Day types (travel, sick, holiday, deep_work, ...)")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

func newScheduleUnmarkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unmark DATE",
		Short: "Remove a date's marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			return app.Schedule.UnmarkDate(context.Background(), date)
		},
	}
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show marked dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Schedule.Snapshot(context.Background())
			if err != nil {
				return err
			}

			state := formatter.StyleGreen.Render("on")
			if !cfg.Enabled {
				state = formatter.StyleRed.Render("off")
			}
			fmt.Println(formatter.Header("Schedule"))
			fmt.Printf("Smart scheduling: %s\n\n", state)

			if len(cfg.MarkedDates) == 0 {
				fmt.Println(formatter.Dim("No marked dates."))
				return nil
			}

			keys := make([]string, 0, len(cfg.MarkedDates))
			for key := range cfg.MarkedDates {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				md := cfg.MarkedDates[key]
				badges := ""
				for i, dt := range md.DayTypes.Sorted() {
					if i > 0 {
						badges += " "
					}
					badges += formatter.DayTypeBadge(dt)
				}
				fmt.Printf("%s  %s\n", key, badges)
			}
			return nil
		},
	}
}

func newScheduleTypesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List and manage day types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Schedule.Snapshot(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Built in"))
			for _, def := range domain.BuiltinDayTypes() {
				fmt.Printf("%s %s  %s\n", def.Icon, formatter.DayTypeBadge(def.Key),
					formatter.Dim(def.Label))
			}
			if len(cfg.CustomDayTypes) > 0 {
				fmt.Println()
				fmt.Println(formatter.Header("Custom"))
				for _, def := range cfg.CustomDayTypes {
					fmt.Printf("%s %s  %s\n", def.Icon, formatter.Bold(def.Key),
						formatter.Dim(def.Label))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newScheduleTypeAddCmd(app), newScheduleTypeRemoveCmd(app))

	return cmd
}

func newScheduleTypeAddCmd(app *App) *cobra.Command {
	var label, icon, color string

	cmd := &cobra.Command{
		Use:   "add KEY",
		Short: "Register a custom day type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := domain.CustomDayTypeDef{
				Key:   args[0],
				Label: label,
				Icon:  icon,
				Color: color,
			}
			if def.Label == "" {
				def.Label = def.Key
			}
			return app.Schedule.AddCustomDayType(context.Background(), def)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Display label")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newScheduleTypeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm KEY",
		Short: "Remove a custom day type and its marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Schedule.RemoveCustomDayType(context.Background(), args[0])
		},
	}
}

func newScheduleEnableCmd(app *App, enable bool) *cobra.Command {
	use, short := "enable", "Turn smart scheduling on"
	if !enable {
		use, short = "disable", "Turn smart scheduling off (frequency-only mode)"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Schedule.SetEnabled(context.Background(), enable)
		},
	}
}
