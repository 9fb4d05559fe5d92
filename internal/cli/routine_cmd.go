package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func resolveRoutineID(ctx context.Context, app *App, input string) (string, error) {
	routines, err := app.Routines.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(routines))
	names := make([]string, len(routines))
	for i, rt := range routines {
		ids[i] = rt.ID
		names[i] = rt.Name
	}
	return resolveID("routine", input, ids, names)
}

// parseStep parses "Title:minutes", with minutes optional.
func parseStep(spec string) (domain.RoutineStep, error) {
	title := spec
	minutes := 5
	if idx := strings.LastIndex(spec, ":"); idx > 0 {
		parsed, err := strconv.Atoi(strings.TrimSpace(spec[idx+1:]))
		if err == nil {
			title = strings.TrimSpace(spec[:idx])
			minutes = parsed
		}
	}
	if strings.TrimSpace(title) == "" {
		return domain.RoutineStep{}, fmt.Errorf("empty step in %q", spec)
	}
	return domain.RoutineStep{Title: strings.TrimSpace(title), DurationMin: minutes}, nil
}

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage step-by-step routines",
	}

	cmd.AddCommand(
		newRoutineAddCmd(app),
		newRoutineListCmd(app),
		newRoutineShowCmd(app),
		newRoutineArchiveCmd(app),
		newRoutineRemoveCmd(app),
	)

	return cmd
}

func newRoutineAddCmd(app *App) *cobra.Command {
	var (
		name, freq, timeOfDay string
		steps, onTypes        []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := &domain.Routine{
				Name:      name,
				Frequency: domain.Frequency(freq),
				TimeOfDay: domain.TimeOfDay(timeOfDay),
				Affinity:  domain.RestrictedTo(parseDayTypes(onTypes)...),
			}
			for _, spec := range steps {
				step, err := parseStep(spec)
				if err != nil {
					return err
				}
				rt.Steps = append(rt.Steps, step)
			}

			if err := app.Routines.Create(context.Background(), rt); err != nil {
				return err
			}
			fmt.Printf("Created routine %s [%s] with %d steps\n",
				rt.Name, formatter.TruncID(rt.ID), len(rt.Steps))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Routine name")
	cmd.Flags().StringVar(&freq, "freq", "daily", "daily, weekdays or weekends")
	cmd.Flags().StringVar(&timeOfDay, "time", "morning", "morning, afternoon, evening, night or anytime")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "Step as 'Title:minutes' (repeatable, in order)")
	cmd.Flags().StringSliceVar(&onTypes, "on", nil, "Restrict to day types; empty = all")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoutineListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := app.Routines.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(routines) == 0 {
				fmt.Println("No routines yet. Start with: sundial routine add")
				return nil
			}
			fmt.Println(formatter.FormatRoutineList(routines))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived routines")

	return cmd
}

func newRoutineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a routine's steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			routineID, err := resolveRoutineID(ctx, app, args[0])
			if err != nil {
				return err
			}
			rt, err := app.Routines.GetByID(ctx, routineID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(rt.Name))
			for i, step := range rt.Steps {
				fmt.Printf("%d. %s  %s\n", i+1, step.Title,
					formatter.Dim(formatter.FormatMinutes(step.DurationMin)))
			}
			fmt.Printf("\n%s\n", formatter.Dim(fmt.Sprintf("Total: %s",
				formatter.FormatMinutes(rt.TotalDurationMin()))))
			return nil
		},
	}
}

func newRoutineArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			routineID, err := resolveRoutineID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Routines.Archive(ctx, routineID)
		},
	}
}

func newRoutineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			routineID, err := resolveRoutineID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Routines.Delete(ctx, routineID)
		},
	}
}
