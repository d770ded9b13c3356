// Package database sets up/opens the attempt history database.
package database

import (
	"database/sql"
	"fmt"

	"tubaudio/internal/utils/logging"

	// Package sqlite3 provides interface to SQLite3 databases.
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
)

// Database holds the history database handle.
type Database struct {
	DB *sql.DB
}

// InitDB opens (or creates) the database at path and ensures its tables exist.
func InitDB(path string) (d *Database, err error) {
	d = new(Database)
	d.DB, err = sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	// Allow SQLite to wait for locks (in milliseconds)
	if _, err := d.DB.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if err := d.initTables(); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.DB.Close()
}

// initTables initializes the SQL tables.
func (d *Database) initTables() (err error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E(0, "Panic rollback failed for table creation: %v", rbErr)
			}
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E(0, "transaction rollback failed after original error %v: %v", err, rbErr)
			}
		}
	}()

	if err = initAttemptsTable(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
