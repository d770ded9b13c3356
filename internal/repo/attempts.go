// Package repo holds the database stores.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tubaudio/internal/domain/consts"
	"tubaudio/internal/models"

	"github.com/Masterminds/squirrel"
)

// AttemptStore holds a pointer to the sql.DB.
type AttemptStore struct {
	DB *sql.DB
}

// GetAttemptStore returns an attempt store instance with injected database.
func GetAttemptStore(db *sql.DB) *AttemptStore {
	return &AttemptStore{
		DB: db,
	}
}

// RecordAttempt inserts one download attempt.
func (as *AttemptStore) RecordAttempt(ctx context.Context, a *models.Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	query := squirrel.
		Insert(consts.DBAttempts).
		Columns(
			consts.QAttemptRunID,
			consts.QAttemptURL,
			consts.QAttemptStatus,
			consts.QAttemptKind,
			consts.QAttemptMessage,
			consts.QAttemptSaved,
			consts.QAttemptSkipped,
			consts.QAttemptCreated,
		).
		Values(
			a.RunID,
			a.URL,
			a.Status,
			a.ErrKind,
			a.Message,
			a.Saved,
			a.Skipped,
			a.CreatedAt,
		).
		RunWith(as.DB)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to record attempt for %q: %w", a.URL, err)
	}

	if a.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read attempt ID for %q: %w", a.URL, err)
	}
	return nil
}

// ListAttempts returns attempts matching f, newest first.
func (as *AttemptStore) ListAttempts(ctx context.Context, f models.AttemptFilter) ([]*models.Attempt, error) {
	query := squirrel.
		Select(
			consts.QAttemptID,
			consts.QAttemptRunID,
			consts.QAttemptURL,
			consts.QAttemptStatus,
			consts.QAttemptKind,
			consts.QAttemptMessage,
			consts.QAttemptSaved,
			consts.QAttemptSkipped,
			consts.QAttemptCreated,
		).
		From(consts.DBAttempts).
		OrderBy(consts.QAttemptCreated+" DESC", consts.QAttemptID+" DESC")

	if !f.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{consts.QAttemptCreated: f.Since.UTC()})
	}
	if f.FailedOnly {
		query = query.Where(squirrel.Eq{consts.QAttemptStatus: consts.AttemptFailed})
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	rows, err := query.RunWith(as.DB).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*models.Attempt
	for rows.Next() {
		a := new(models.Attempt)
		if err := rows.Scan(
			&a.ID,
			&a.RunID,
			&a.URL,
			&a.Status,
			&a.ErrKind,
			&a.Message,
			&a.Saved,
			&a.Skipped,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attempts: %w", err)
	}
	return attempts, nil
}
