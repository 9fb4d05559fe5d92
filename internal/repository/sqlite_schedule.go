package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Load(ctx context.Context) (domain.ScheduleConfig, error) {
	cfg := domain.EmptyScheduleConfig()

	var enabled int
	err := r.db.QueryRowContext(ctx,
		`SELECT enabled FROM schedule_settings WHERE id = 'default'`).Scan(&enabled)
	switch {
	case err == nil:
		cfg.Enabled = enabled != 0
	case errors.Is(err, sql.ErrNoRows):
		// Never configured: smart scheduling defaults to enabled.
	default:
		return cfg, fmt.Errorf("loading schedule settings: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT date, day_types FROM marked_dates`)
	if err != nil {
		return cfg, fmt.Errorf("loading marked dates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dateStr, typesStr string
		if err := rows.Scan(&dateStr, &typesStr); err != nil {
			return cfg, fmt.Errorf("scanning marked date: %w", err)
		}
		date, err := time.Parse(domain.DateKey, dateStr)
		if err != nil {
			continue // malformed rows are treated as unmarked
		}
		set := decodeSet(typesStr)
		if set.Len() == 0 {
			continue
		}
		cfg.MarkedDates[dateStr] = domain.MarkedDate{Date: date, DayTypes: set}
	}
	if err := rows.Err(); err != nil {
		return cfg, fmt.Errorf("iterating marked dates: %w", err)
	}

	typeRows, err := r.db.QueryContext(ctx,
		`SELECT key, label, icon, color FROM custom_day_types ORDER BY key`)
	if err != nil {
		return cfg, fmt.Errorf("loading custom day types: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var def domain.CustomDayTypeDef
		if err := typeRows.Scan(&def.Key, &def.Label, &def.Icon, &def.Color); err != nil {
			return cfg, fmt.Errorf("scanning custom day type: %w", err)
		}
		cfg.CustomDayTypes = append(cfg.CustomDayTypes, def)
	}
	if err := typeRows.Err(); err != nil {
		return cfg, fmt.Errorf("iterating custom day types: %w", err)
	}
	return cfg, nil
}

func (r *SQLiteScheduleRepo) UpsertMarkedDate(ctx context.Context, md domain.MarkedDate) error {
	if md.DayTypes.Len() == 0 {
		return fmt.Errorf("marked date must carry at least one day type")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO marked_dates (date, day_types) VALUES (?, ?)`,
		md.Date.Format(domain.DateKey), encodeSet(md.DayTypes))
	if err != nil {
		return fmt.Errorf("upserting marked date: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteMarkedDate(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM marked_dates WHERE date = ?`, date.Format(domain.DateKey))
	if err != nil {
		return fmt.Errorf("deleting marked date: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) CreateCustomDayType(ctx context.Context, def domain.CustomDayTypeDef) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_day_types (key, label, icon, color) VALUES (?, ?, ?, ?)`,
		def.Key, def.Label, def.Icon, def.Color)
	if err != nil {
		return fmt.Errorf("inserting custom day type: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteCustomDayType(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM custom_day_types WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting custom day type: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) SetEnabled(ctx context.Context, enabled bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schedule_settings (id, enabled) VALUES ('default', ?)`,
		boolToInt(enabled))
	if err != nil {
		return fmt.Errorf("setting schedule enabled flag: %w", err)
	}
	return nil
}
