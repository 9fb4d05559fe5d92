package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

const habitColumns = `id, loop_id, name, cue_kind, cue_value, response, reward,
	frequency, custom_days, time_of_day, day_types, status, created_at, updated_at`

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.LoopID,
		h.Name,
		h.Cue.Kind,
		h.Cue.Value,
		h.Response,
		h.Reward,
		string(h.Frequency),
		encodeWeekdays(h.CustomDays),
		string(h.TimeOfDay),
		encodeDayTypes(h.Affinity),
		string(h.Status),
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return r.saveOverrides(ctx, h)
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := r.scanHabit(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadOverrides(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *SQLiteHabitRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY created_at, id`
	return r.queryHabits(ctx, query)
}

func (r *SQLiteHabitRepo) ListActive(ctx context.Context) ([]*domain.Habit, error) {
	return r.queryHabits(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE status = 'active' ORDER BY created_at, id`)
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET loop_id = ?, name = ?, cue_kind = ?, cue_value = ?,
		response = ?, reward = ?, frequency = ?, custom_days = ?, time_of_day = ?,
		day_types = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		h.LoopID,
		h.Name,
		h.Cue.Kind,
		h.Cue.Value,
		h.Response,
		h.Reward,
		string(h.Frequency),
		encodeWeekdays(h.CustomDays),
		string(h.TimeOfDay),
		encodeDayTypes(h.Affinity),
		string(h.Status),
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit %s: %w", h.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM habit_overrides WHERE habit_id = ?`, h.ID); err != nil {
		return fmt.Errorf("clearing habit overrides: %w", err)
	}
	return r.saveOverrides(ctx, h)
}

func (r *SQLiteHabitRepo) SetStatus(ctx context.Context, id string, status domain.HabitStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE habits SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting habit status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) saveOverrides(ctx context.Context, h *domain.Habit) error {
	for dayType, ov := range h.Overrides {
		var tod any
		if ov.TimeOfDay != nil {
			tod = string(*ov.TimeOfDay)
		}
		var cue any
		if ov.CueValue != nil {
			cue = *ov.CueValue
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO habit_overrides (habit_id, day_type, time_of_day, cue_value)
			VALUES (?, ?, ?, ?)`,
			h.ID, string(dayType), tod, cue)
		if err != nil {
			return fmt.Errorf("inserting habit override: %w", err)
		}
	}
	return nil
}

func (r *SQLiteHabitRepo) loadOverrides(ctx context.Context, h *domain.Habit) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day_type, time_of_day, cue_value FROM habit_overrides WHERE habit_id = ?`, h.ID)
	if err != nil {
		return fmt.Errorf("loading habit overrides: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dayType string
		var tod, cue sql.NullString
		if err := rows.Scan(&dayType, &tod, &cue); err != nil {
			return fmt.Errorf("scanning habit override: %w", err)
		}
		ov := domain.DayTypeOverride{}
		if tod.Valid {
			t := domain.TimeOfDay(tod.String)
			ov.TimeOfDay = &t
		}
		if cue.Valid {
			v := cue.String
			ov.CueValue = &v
		}
		if h.Overrides == nil {
			h.Overrides = make(map[domain.DayType]domain.DayTypeOverride)
		}
		h.Overrides[domain.DayType(dayType)] = ov
	}
	return rows.Err()
}

func (r *SQLiteHabitRepo) queryHabits(ctx context.Context, query string, args ...any) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := r.scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	for _, h := range habits {
		if err := r.loadOverrides(ctx, h); err != nil {
			return nil, err
		}
	}
	return habits, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteHabitRepo) scanHabit(row rowScanner) (*domain.Habit, error) {
	var h domain.Habit
	var freq, customDays, tod, dayTypes, status, createdAt, updatedAt string

	err := row.Scan(
		&h.ID, &h.LoopID, &h.Name, &h.Cue.Kind, &h.Cue.Value, &h.Response, &h.Reward,
		&freq, &customDays, &tod, &dayTypes, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	h.Frequency = domain.Frequency(freq)
	h.CustomDays = decodeWeekdays(customDays)
	h.TimeOfDay = domain.TimeOfDay(tod)
	h.Affinity = decodeDayTypes(dayTypes)
	h.Status = domain.HabitStatus(status)
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	h.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &h, nil
}
