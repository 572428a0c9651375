package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order.
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
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		whatsapp_number TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		reminder_time TEXT NOT NULL DEFAULT '09:00',
		is_active     INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_habits_reminder ON habits(reminder_time)`,

	// One row per habit per calendar day. The UNIQUE constraint is what
	// makes log upserts idempotent under duplicate webhook deliveries.
	`CREATE TABLE IF NOT EXISTS habit_logs (
		id            TEXT PRIMARY KEY,
		habit_id      TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		logged_at     TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending'
		              CHECK(status IN ('completed','skipped','pending')),
		feedback_note TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE(habit_id, logged_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_logs_habit ON habit_logs(habit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_logged ON habit_logs(logged_at)`,

	// Execution intelligence columns added after the initial schema.
	`ALTER TABLE habits ADD COLUMN priority INTEGER NOT NULL DEFAULT 1`,
	`ALTER TABLE habits ADD COLUMN delay_count INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE habits ADD COLUMN habit_kind TEXT NOT NULL DEFAULT 'habit'`,
}
