package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nholm/sundial/internal/cli"
	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/seed"
	"github.com/nholm/sundial/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.sundial/sundial.db
	dbPath := os.Getenv("SUNDIAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".sundial", "sundial.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	habitRepo := repository.NewSQLiteHabitRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	recipeRepo := repository.NewSQLiteRecipeRepo(database)
	wasteRepo := repository.NewSQLiteWasteRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	todaySvc := service.NewTodayService(habitRepo, completionRepo, routineRepo, scheduleRepo)
	suggestSvc := service.NewSuggestService(recipeRepo, profileRepo)

	// SUNDIAL_DEBUG streams use-case telemetry to stderr.
	if os.Getenv("SUNDIAL_DEBUG") != "" {
		observer := service.NewLogUseCaseObserver(os.Stderr)
		todaySvc = service.ObservedTodayService(todaySvc, observer)
		suggestSvc = service.ObservedSuggestService(suggestSvc, observer)
	}

	app := &cli.App{
		Habits:   service.NewHabitService(habitRepo, completionRepo),
		Routines: service.NewRoutineService(routineRepo, scheduleRepo),
		Today:    todaySvc,
		Suggest:  suggestSvc,
		Waste:    service.NewWasteService(wasteRepo, seed.NewStatic().PriceTable()),
		Schedule: service.NewScheduleService(scheduleRepo, uow),
		Recipes:  service.NewRecipeService(recipeRepo),
		Profile:  service.NewProfileService(profileRepo),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
