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
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		company    TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','prospect','inactive')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                  TEXT PRIMARY KEY,
		client_id           TEXT REFERENCES clients(id) ON DELETE SET NULL,
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		priority            TEXT NOT NULL
		                    CHECK(priority IN ('low','medium','high','critical')),
		status              TEXT NOT NULL DEFAULT 'todo'
		                    CHECK(status IN ('todo','in_progress','done')),
		estimated_hours     REAL NOT NULL,
		actual_hours        REAL NOT NULL DEFAULT 0,
		start_date          TEXT NOT NULL,
		due_date            TEXT,
		is_tracking         INTEGER NOT NULL DEFAULT 0,
		tracking_since      TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_start_date ON tasks(start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_client ON tasks(client_id)`,

	`CREATE TABLE IF NOT EXISTS work_calendar (
		weekday    INTEGER PRIMARY KEY CHECK(weekday BETWEEN 0 AND 6),
		active     INTEGER NOT NULL DEFAULT 0,
		start_time TEXT NOT NULL DEFAULT '09:00',
		end_time   TEXT NOT NULL DEFAULT '18:00'
	)`,

	`CREATE TABLE IF NOT EXISTS sla_rules (
		priority          TEXT PRIMARY KEY
		                  CHECK(priority IN ('low','medium','high','critical')),
		start_offset_days INTEGER NOT NULL CHECK(start_offset_days >= 0),
		max_tasks_per_day INTEGER NOT NULL CHECK(max_tasks_per_day > 0)
	)`,
}
