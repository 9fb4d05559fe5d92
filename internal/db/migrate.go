package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions that already applied are tolerated on re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		loop_id     TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		cue_kind    TEXT NOT NULL DEFAULT '',
		cue_value   TEXT NOT NULL DEFAULT '',
		response    TEXT NOT NULL DEFAULT '',
		reward      TEXT NOT NULL DEFAULT '',
		frequency   TEXT NOT NULL
		            CHECK(frequency IN ('daily','weekdays','weekends','weekly','custom')),
		custom_days TEXT NOT NULL DEFAULT '',
		time_of_day TEXT NOT NULL DEFAULT 'anytime'
		            CHECK(time_of_day IN ('morning','afternoon','evening','night','anytime')),
		day_types   TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_overrides (
		habit_id    TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		day_type    TEXT NOT NULL,
		time_of_day TEXT,
		cue_value   TEXT,
		PRIMARY KEY (habit_id, day_type)
	)`,

	`CREATE TABLE IF NOT EXISTS habit_completions (
		id           TEXT PRIMARY KEY,
		habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		difficulty   INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_habit ON habit_completions(habit_id, date)`,

	`CREATE TABLE IF NOT EXISTS routines (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		frequency   TEXT NOT NULL
		            CHECK(frequency IN ('daily','weekdays','weekends')),
		time_of_day TEXT NOT NULL DEFAULT 'anytime'
		            CHECK(time_of_day IN ('morning','afternoon','evening','night','anytime')),
		day_types   TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS routine_steps (
		id           TEXT PRIMARY KEY,
		routine_id   TEXT NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		order_index  INTEGER NOT NULL DEFAULT 0,
		title        TEXT NOT NULL,
		duration_min INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_steps_routine ON routine_steps(routine_id)`,

	`CREATE TABLE IF NOT EXISTS recipes (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		prep_min    INTEGER NOT NULL DEFAULT 0,
		cook_min    INTEGER NOT NULL DEFAULT 0,
		total_min   INTEGER NOT NULL DEFAULT 0,
		difficulty  TEXT NOT NULL DEFAULT 'easy'
		            CHECK(difficulty IN ('easy','medium','advanced','project')),
		courses     TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '',
		times_made  INTEGER NOT NULL DEFAULT 0,
		last_made   TEXT,
		rating      INTEGER NOT NULL DEFAULT 0,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS kitchen_profile (
		id               TEXT PRIMARY KEY,
		experience_level TEXT NOT NULL DEFAULT 'beginner'
		                 CHECK(experience_level IN ('beginner','comfortable','experienced','advanced'))
	)`,

	`CREATE TABLE IF NOT EXISTS waste_entries (
		id              TEXT PRIMARY KEY,
		ingredient_name TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		quantity        REAL NOT NULL DEFAULT 1,
		unit            TEXT NOT NULL DEFAULT '',
		reason          TEXT NOT NULL
		                CHECK(reason IN ('spoiled','forgotten','overcooked','too_much','did_not_eat','other')),
		date            TEXT NOT NULL,
		estimated_cost  REAL,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_waste_normalized ON waste_entries(normalized_name)`,
	`CREATE INDEX IF NOT EXISTS idx_waste_date ON waste_entries(date)`,

	`CREATE TABLE IF NOT EXISTS marked_dates (
		date      TEXT PRIMARY KEY,
		day_types TEXT NOT NULL CHECK(day_types <> '')
	)`,

	`CREATE TABLE IF NOT EXISTS custom_day_types (
		key   TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		icon  TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_settings (
		id      TEXT PRIMARY KEY,
		enabled INTEGER NOT NULL DEFAULT 1
	)`,
}
