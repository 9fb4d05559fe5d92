package cli

import (
	"github.com/nholm/sundial/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Habits   service.HabitService
	Routines service.RoutineService
	Today    service.TodayService
	Suggest  service.SuggestService
	Waste    service.WasteService
	Schedule service.ScheduleService
	Recipes  service.RecipeService
	Profile  service.ProfileService

	// Interactive is true when stdin/stdout are a terminal; it gates
	// the huh forms and the board TUI.
	Interactive bool
}

// NewRootCmd creates the top-level "sundial" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sundial",
		Short: "Personal day planner: habits, routines, meals and the waste log",
	}

	root.AddCommand(
		newTodayCmd(app),
		newBoardCmd(app),
		newHealthCmd(app),
		newHabitCmd(app),
		newRoutineCmd(app),
		newRecipeCmd(app),
		newSuggestCmd(app),
		newWasteCmd(app),
		newScheduleCmd(app),
	)

	return root
}
