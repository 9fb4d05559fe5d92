package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nholm/sundial/internal/db"
	"github.com/nholm/sundial/internal/domain"
)

// SQLiteRecipeRepo implements RecipeRepo using a SQLite database.
type SQLiteRecipeRepo struct {
	db db.DBTX
}

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(conn db.DBTX) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: conn}
}

const recipeColumns = `id, name, prep_min, cook_min, total_min, difficulty,
	courses, tags, times_made, last_made, rating, is_favorite, created_at, updated_at`

func (r *SQLiteRecipeRepo) Create(ctx context.Context, rec *domain.Recipe) error {
	query := `INSERT INTO recipes (` + recipeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		rec.PrepTimeMin,
		rec.CookTimeMin,
		rec.TotalTimeMin,
		string(rec.Difficulty),
		encodeCourses(rec.Courses),
		encodeStrings(rec.Tags),
		rec.TimesMade,
		nullableTimeToString(rec.LastMade, time.RFC3339),
		rec.Rating,
		boolToInt(rec.IsFavorite),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	return r.scanRecipe(row)
}

func (r *SQLiteRecipeRepo) List(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		rec, err := r.scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

func (r *SQLiteRecipeRepo) Update(ctx context.Context, rec *domain.Recipe) error {
	query := `UPDATE recipes SET name = ?, prep_min = ?, cook_min = ?, total_min = ?,
		difficulty = ?, courses = ?, tags = ?, times_made = ?, last_made = ?,
		rating = ?, is_favorite = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rec.Name,
		rec.PrepTimeMin,
		rec.CookTimeMin,
		rec.TotalTimeMin,
		string(rec.Difficulty),
		encodeCourses(rec.Courses),
		encodeStrings(rec.Tags),
		rec.TimesMade,
		nullableTimeToString(rec.LastMade, time.RFC3339),
		rec.Rating,
		boolToInt(rec.IsFavorite),
		rec.UpdatedAt.Format(time.RFC3339),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("recipe %s: %w", rec.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRecipeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var rec domain.Recipe
	var difficulty, courses, tags, createdAt, updatedAt string
	var lastMade sql.NullString
	var favorite int

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.PrepTimeMin, &rec.CookTimeMin, &rec.TotalTimeMin,
		&difficulty, &courses, &tags, &rec.TimesMade, &lastMade,
		&rec.Rating, &favorite, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recipe: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning recipe: %w", err)
	}

	rec.Difficulty = domain.Difficulty(difficulty)
	rec.Courses = decodeCourses(courses)
	rec.Tags = decodeStrings(tags)
	rec.LastMade = parseNullableTime(lastMade, time.RFC3339)
	rec.IsFavorite = favorite != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rec, nil
}
