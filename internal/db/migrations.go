package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS alerts (
  id INTEGER PRIMARY KEY,
  type TEXT NOT NULL,
  message TEXT NOT NULL,
  department TEXT,
  status TEXT NOT NULL,
  created_at TEXT NOT NULL,
  resolved_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_alerts_status ON alerts(status);

CREATE TABLE IF NOT EXISTS crawl_jobs (
  id INTEGER PRIMARY KEY,
  source TEXT NOT NULL,
  status TEXT NOT NULL,
  articles_found INTEGER NOT NULL DEFAULT 0,
  error_message TEXT,
  start_time TEXT NOT NULL,
  end_time TEXT
);

CREATE INDEX IF NOT EXISTS idx_crawl_jobs_status ON crawl_jobs(status);
CREATE INDEX IF NOT EXISTS idx_crawl_jobs_start_time ON crawl_jobs(start_time);

CREATE TABLE IF NOT EXISTS run_stats (
  id INTEGER PRIMARY KEY,
  source TEXT NOT NULL,
  article_count INTEGER NOT NULL,
  fallback_used INTEGER NOT NULL DEFAULT 0,
  run_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_stats_run_at ON run_stats(run_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add alert_key column to alerts for deduplicating
	// repeated negative coverage alerts per department.
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('alerts') WHERE name = 'alert_key'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check alert_key column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE alerts ADD COLUMN alert_key TEXT`); err != nil {
			return fmt.Errorf("add alert_key column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_alerts_alert_key ON alerts(alert_key)`); err != nil {
		return fmt.Errorf("create idx_alerts_alert_key: %w", err)
	}

	return nil
}
