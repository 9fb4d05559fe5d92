package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Create(ctx context.Context, c *domain.HabitCompletion) error {
	var difficulty any
	if c.Difficulty != nil {
		difficulty = *c.Difficulty
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO habit_completions (id, habit_id, date, completed_at, difficulty)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID,
		c.HabitID,
		c.Date.Format(domain.DateKey),
		c.CompletedAt.Format(time.RFC3339),
		difficulty,
	)
	if err != nil {
		return fmt.Errorf("inserting habit completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitCompletion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, habit_id, date, completed_at, difficulty
		FROM habit_completions WHERE habit_id = ? ORDER BY date DESC`, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing completions by habit: %w", err)
	}
	defer rows.Close()
	return r.scanCompletions(rows)
}

func (r *SQLiteCompletionRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.HabitCompletion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, habit_id, date, completed_at, difficulty
		FROM habit_completions WHERE date >= ? ORDER BY date DESC`,
		since.Format(domain.DateKey))
	if err != nil {
		return nil, fmt.Errorf("listing completions since %s: %w", since.Format(domain.DateKey), err)
	}
	defer rows.Close()
	return r.scanCompletions(rows)
}

func (r *SQLiteCompletionRepo) ExistsOn(ctx context.Context, habitID string, date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM habit_completions WHERE habit_id = ? AND date = ?`,
		habitID, date.Format(domain.DateKey)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking completion: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteCompletionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM habit_completions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting habit completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) scanCompletions(rows *sql.Rows) ([]*domain.HabitCompletion, error) {
	var out []*domain.HabitCompletion
	for rows.Next() {
		var c domain.HabitCompletion
		var dateStr, completedAtStr string
		var difficulty sql.NullInt64
		if err := rows.Scan(&c.ID, &c.HabitID, &dateStr, &completedAtStr, &difficulty); err != nil {
			return nil, fmt.Errorf("scanning habit completion: %w", err)
		}
		c.Date, _ = time.Parse(domain.DateKey, dateStr)
		c.CompletedAt, _ = time.Parse(time.RFC3339, completedAtStr)
		if difficulty.Valid {
			d := int(difficulty.Int64)
			c.Difficulty = &d
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit completions: %w", err)
	}
	return out, nil
}
