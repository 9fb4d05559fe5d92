package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteWasteRepo implements WasteRepo using a SQLite database.
type SQLiteWasteRepo struct {
	db db.DBTX
}

// NewSQLiteWasteRepo creates a new SQLiteWasteRepo.
func NewSQLiteWasteRepo(conn db.DBTX) *SQLiteWasteRepo {
	return &SQLiteWasteRepo{db: conn}
}

const wasteColumns = `id, ingredient_name, normalized_name, quantity, unit,
	reason, date, estimated_cost, created_at`

func (r *SQLiteWasteRepo) Create(ctx context.Context, e *domain.WasteEntry) error {
	var cost any
	if e.EstimatedCost != nil {
		cost = *e.EstimatedCost
	}
	query := `INSERT INTO waste_entries (` + wasteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.IngredientName,
		e.NormalizedName,
		e.Quantity,
		e.Unit,
		string(e.Reason),
		e.Date.Format(domain.DateKey),
		cost,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting waste entry: %w", err)
	}
	return nil
}

func (r *SQLiteWasteRepo) GetByID(ctx context.Context, id string) (*domain.WasteEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+wasteColumns+` FROM waste_entries WHERE id = ?`, id)
	e, err := r.scanEntry(row)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteWasteRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.WasteEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+wasteColumns+` FROM waste_entries WHERE date >= ? ORDER BY date DESC, id`,
		since.Format(domain.DateKey))
	if err != nil {
		return nil, fmt.Errorf("listing waste entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.WasteEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waste entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteWasteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM waste_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting waste entry: %w", err)
	}
	return nil
}

func (r *SQLiteWasteRepo) scanEntry(row rowScanner) (*domain.WasteEntry, error) {
	var e domain.WasteEntry
	var reason, dateStr, createdAt string
	var cost sql.NullFloat64

	err := row.Scan(
		&e.ID, &e.IngredientName, &e.NormalizedName, &e.Quantity, &e.Unit,
		&reason, &dateStr, &cost, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("waste entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning waste entry: %w", err)
	}

	e.Reason = domain.WasteReason(reason)
	e.Date, _ = time.Parse(domain.DateKey, dateStr)
	if cost.Valid {
		v := cost.Float64
		e.EstimatedCost = &v
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}
