package cli

import (
	"context"
	"fmt"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/contract"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var (
		maxMinutes, limit int
		mood, course      string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest what to cook right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Suggest.Suggest(context.Background(), contract.SuggestRequest{
				MaxMinutes: maxMinutes,
				Mood:       domain.Mood(mood),
				Course:     domain.Course(course),
				Limit:      limit,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSuggestions(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxMinutes, "time", 0, "Minutes available (0 = no limit)")
	cmd.Flags().StringVar(&mood, "mood", "", "comfort, healthy, adventurous or easy")
	cmd.Flags().StringVar(&course, "course", "", "breakfast, lunch, dinner, snack or dessert")
	cmd.Flags().IntVar(&limit, "limit", 0, "Shortlist size (default 6)")

	return cmd
}
