package database

import (
	"database/sql"
	"fmt"
)

// initAttemptsTable initializes the download attempts table.
func initAttemptsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS attempts (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL,
        url TEXT NOT NULL,
        status TEXT NOT NULL CHECK(status IN ('succeeded', 'failed')),
        error_kind TEXT,
        message TEXT,
        saved INTEGER DEFAULT 0,
        skipped INTEGER DEFAULT 0,
        created_at TIMESTAMP NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_attempts_url ON attempts(url);
    CREATE INDEX IF NOT EXISTS idx_attempts_status ON attempts(status);
    CREATE INDEX IF NOT EXISTS idx_attempts_created_at ON attempts(created_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create attempts table: %w", err)
	}
	return nil
}
