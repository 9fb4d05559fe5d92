package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func newWasteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waste",
		Short: "Log and analyze wasted food",
	}

	cmd.AddCommand(
		newWasteLogCmd(app),
		newWasteStatsCmd(app),
		newWasteRemoveCmd(app),
	)

	return cmd
}

func newWasteLogCmd(app *App) *cobra.Command {
	var (
		reason, unit, dateStr string
		quantity, cost        float64
	)

	cmd := &cobra.Command{
		Use:   "log INGREDIENT",
		Short: "Log a wasted ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.WasteEntry{
				Quantity: quantity,
				Unit:     unit,
				Reason:   domain.WasteReason(reason),
			}
			e.SetIngredientName(args[0])

			if dateStr != "" {
				date, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				e.Date = date
			}
			if cmd.Flags().Changed("cost") {
				e.EstimatedCost = &cost
			}

			if err := app.Waste.Log(context.Background(), e); err != nil {
				return err
			}

			if e.EstimatedCost != nil {
				fmt.Printf("Logged %s (%s estimated)\n", e.IngredientName,
					formatter.Money(*e.EstimatedCost))
			} else {
				fmt.Printf("Logged %s (no cost estimate)\n", e.IngredientName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", string(domain.ReasonSpoiled),
		"spoiled, forgotten, overcooked, too_much, did_not_eat or other")
	cmd.Flags().Float64Var(&quantity, "qty", 1, "Quantity wasted")
	cmd.Flags().StringVar(&unit, "unit", "each", "Unit (lb, kg, g, oz, each, bunch, cup, ...)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Known cost in dollars (overrides the estimate)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Waste date (YYYY-MM-DD, default today)")

	return cmd
}

func newWasteStatsCmd(app *App) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show waste analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Waste.Stats(context.Background(), months, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWasteStats(stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 3, "Window size in months")

	return cmd
}

func newWasteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a waste entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Waste.Remove(context.Background(), args[0])
		},
	}
}
