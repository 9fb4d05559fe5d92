package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// There is a single profile row keyed 'default'.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.KitchenProfile, error) {
	var p domain.KitchenProfile
	var level string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, experience_level FROM kitchen_profile WHERE id = 'default'`,
	).Scan(&p.ID, &level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("kitchen profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning kitchen profile: %w", err)
	}
	p.ExperienceLevel = domain.ExperienceLevel(level)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.KitchenProfile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kitchen_profile (id, experience_level) VALUES ('default', ?)`,
		string(p.ExperienceLevel))
	if err != nil {
		return fmt.Errorf("upserting kitchen profile: %w", err)
	}
	return nil
}
