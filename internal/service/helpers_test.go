package service

import (
	"testing"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/repository"
	"github.com/nholm/sundial/internal/testutil"
)

type testRepos struct {
	habits      *repository.SQLiteHabitRepo
	completions *repository.SQLiteCompletionRepo
	routines    *repository.SQLiteRoutineRepo
	recipes     *repository.SQLiteRecipeRepo
	waste       *repository.SQLiteWasteRepo
	schedule    *repository.SQLiteScheduleRepo
	profiles    *repository.SQLiteProfileRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	conn := testutil.NewTestDB(t)
	return testRepos{
		habits:      repository.NewSQLiteHabitRepo(conn),
		completions: repository.NewSQLiteCompletionRepo(conn),
		routines:    repository.NewSQLiteRoutineRepo(conn),
		recipes:     repository.NewSQLiteRecipeRepo(conn),
		waste:       repository.NewSQLiteWasteRepo(conn),
		schedule:    repository.NewSQLiteScheduleRepo(conn),
		profiles:    repository.NewSQLiteProfileRepo(conn),
		uow:         testutil.NewTestUoW(conn),
	}
}
