package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database.
// Steps load and store with their routine as one aggregate.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

const routineColumns = `id, name, frequency, time_of_day, day_types, status, created_at, updated_at`

func (r *SQLiteRoutineRepo) Create(ctx context.Context, rt *domain.Routine) error {
	query := `INSERT INTO routines (` + routineColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID,
		rt.Name,
		string(rt.Frequency),
		string(rt.TimeOfDay),
		encodeDayTypes(rt.Affinity),
		string(rt.Status),
		rt.CreatedAt.Format(time.RFC3339),
		rt.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting routine: %w", err)
	}
	return r.saveSteps(ctx, rt)
}

func (r *SQLiteRoutineRepo) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+routineColumns+` FROM routines WHERE id = ?`, id)
	rt, err := r.scanRoutine(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSteps(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *SQLiteRoutineRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Routine, error) {
	query := `SELECT ` + routineColumns + ` FROM routines`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	defer rows.Close()

	var routines []*domain.Routine
	for rows.Next() {
		rt, err := r.scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routines: %w", err)
	}
	for _, rt := range routines {
		if err := r.loadSteps(ctx, rt); err != nil {
			return nil, err
		}
	}
	return routines, nil
}

func (r *SQLiteRoutineRepo) Update(ctx context.Context, rt *domain.Routine) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE routines SET name = ?, frequency = ?, time_of_day = ?, day_types = ?,
		status = ?, updated_at = ? WHERE id = ?`,
		rt.Name,
		string(rt.Frequency),
		string(rt.TimeOfDay),
		encodeDayTypes(rt.Affinity),
		string(rt.Status),
		rt.UpdatedAt.Format(time.RFC3339),
		rt.ID,
	)
	if err != nil {
		return fmt.Errorf("updating routine: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("routine %s: %w", rt.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM routine_steps WHERE routine_id = ?`, rt.ID); err != nil {
		return fmt.Errorf("clearing routine steps: %w", err)
	}
	return r.saveSteps(ctx, rt)
}

func (r *SQLiteRoutineRepo) SetStatus(ctx context.Context, id string, status domain.RoutineStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE routines SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting routine status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) saveSteps(ctx context.Context, rt *domain.Routine) error {
	for _, step := range rt.Steps {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO routine_steps (id, routine_id, order_index, title, duration_min)
			VALUES (?, ?, ?, ?, ?)`,
			step.ID, rt.ID, step.OrderIndex, step.Title, step.DurationMin)
		if err != nil {
			return fmt.Errorf("inserting routine step: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRoutineRepo) loadSteps(ctx context.Context, rt *domain.Routine) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, routine_id, order_index, title, duration_min
		FROM routine_steps WHERE routine_id = ? ORDER BY order_index`, rt.ID)
	if err != nil {
		return fmt.Errorf("loading routine steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.RoutineStep
		if err := rows.Scan(&s.ID, &s.RoutineID, &s.OrderIndex, &s.Title, &s.DurationMin); err != nil {
			return fmt.Errorf("scanning routine step: %w", err)
		}
		rt.Steps = append(rt.Steps, s)
	}
	return rows.Err()
}

func (r *SQLiteRoutineRepo) scanRoutine(row rowScanner) (*domain.Routine, error) {
	var rt domain.Routine
	var freq, tod, dayTypes, status, createdAt, updatedAt string

	err := row.Scan(&rt.ID, &rt.Name, &freq, &tod, &dayTypes, &status, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routine: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning routine: %w", err)
	}

	rt.Frequency = domain.Frequency(freq)
	rt.TimeOfDay = domain.TimeOfDay(tod)
	rt.Affinity = decodeDayTypes(dayTypes)
	rt.Status = domain.RoutineStatus(status)
	rt.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rt.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rt, nil
}
