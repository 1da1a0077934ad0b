package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillFrequency(db); err != nil {
		return fmt.Errorf("backfilling habit frequency: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id)`,

	// Recurrence columns arrived after the initial habits schema; the ALTERs
	// are tolerated as duplicates on databases created from this file.
	`ALTER TABLE habits ADD COLUMN frequency TEXT NOT NULL DEFAULT 'DAILY'`,
	`ALTER TABLE habits ADD COLUMN days_of_week TEXT`,

	`CREATE TABLE IF NOT EXISTS habit_pauses (
		id         TEXT PRIMARY KEY,
		habit_id   TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_pauses_habit ON habit_pauses(habit_id)`,

	`CREATE TABLE IF NOT EXISTS habit_logs (
		id         TEXT PRIMARY KEY,
		habit_id   TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(habit_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_habit_date ON habit_logs(habit_id, date)`,
}

// migrateBackfillFrequency normalizes habits created before the frequency
// column existed: anything unset becomes a daily habit.
func migrateBackfillFrequency(db *sql.DB) error {
	_, err := db.Exec(`UPDATE habits SET frequency = 'DAILY' WHERE frequency IS NULL OR frequency = ''`)
	return err
}
