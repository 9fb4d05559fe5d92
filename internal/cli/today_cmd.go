package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/contract"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show what's due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.TodayRequest{}
			if dateStr != "" {
				date, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				req.Date = date
			}

			resp, err := app.Today.Today(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatToday(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to preview (YYYY-MM-DD, default today)")

	return cmd
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show habit system health for the trailing week",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := app.Habits.SystemHealth(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.Bold("System health:"),
				formatter.HealthIndicator(health))
			return nil
		},
	}
}
