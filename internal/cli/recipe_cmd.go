package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/domain"
	"github.com/spf13/cobra"
)

func resolveRecipeID(ctx context.Context, app *App, input string) (string, error) {
	recipes, err := app.Recipes.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(recipes))
	names := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
		names[i] = r.Name
	}
	return resolveID("recipe", input, ids, names)
}

func newRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage the recipe box",
	}

	cmd.AddCommand(
		newRecipeAddCmd(app),
		newRecipeListCmd(app),
		newRecipeMadeCmd(app),
		newRecipeRateCmd(app),
		newRecipeFavCmd(app),
		newRecipeRemoveCmd(app),
		newRecipeSkillCmd(app),
	)

	return cmd
}

func newRecipeAddCmd(app *App) *cobra.Command {
	var (
		name, difficulty  string
		prep, cook        int
		courses, tags     []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Recipe{
				Name:        name,
				PrepTimeMin: prep,
				CookTimeMin: cook,
				Difficulty:  domain.Difficulty(difficulty),
				Tags:        tags,
			}
			for _, c := range courses {
				r.Courses = append(r.Courses, domain.Course(c))
			}

			if err := app.Recipes.Create(context.Background(), r); err != nil {
				return err
			}
			fmt.Printf("Added recipe %s [%s]\n", r.Name, formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Recipe name")
	cmd.Flags().IntVar(&prep, "prep", 0, "Prep time in minutes")
	cmd.Flags().IntVar(&cook, "cook", 0, "Cook time in minutes")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "easy, medium, advanced or project")
	cmd.Flags().StringSliceVar(&courses, "course", nil, "Courses (breakfast, lunch, dinner, snack, dessert)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (comfort, healthy, quick, ...)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRecipeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Recipes.List(context.Background())
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Println("No recipes yet. Start with: sundial recipe add")
				return nil
			}
			fmt.Println(formatter.FormatRecipeList(recipes))
			return nil
		},
	}
}

func newRecipeMadeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "made ID",
		Short: "Record that you cooked a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			recipeID, err := resolveRecipeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Recipes.MarkMade(ctx, recipeID, time.Now().UTC())
		},
	}
}

func newRecipeRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate ID RATING",
		Short: "Rate a recipe 1-5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			recipeID, err := resolveRecipeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}
			return app.Recipes.Rate(ctx, recipeID, rating)
		},
	}
}

func newRecipeFavCmd(app *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "fav ID",
		Short: "Mark a recipe as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			recipeID, err := resolveRecipeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Recipes.SetFavorite(ctx, recipeID, !off)
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Remove the favorite mark")

	return cmd
}

func newRecipeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			recipeID, err := resolveRecipeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Recipes.Delete(ctx, recipeID)
		},
	}
}

func newRecipeSkillCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skill LEVEL",
		Short: "Set your kitchen experience level (beginner, comfortable, experienced, advanced)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := domain.ExperienceLevel(args[0])
			if err := app.Profile.SetExperienceLevel(context.Background(), level); err != nil {
				return err
			}
			fmt.Printf("Kitchen level set to %s\n", level)
			return nil
		},
	}
}
