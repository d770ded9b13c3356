package models

import "time"

// Outcome reports what happened to one URL.
type Outcome struct {
	URL     string
	Success bool
	Result  ResultKind
	Saved   []string
	Skipped int
	Err     *DownloadError
}

// Attempt is one recorded download attempt.
type Attempt struct {
	ID        int64
	RunID     string
	URL       string
	Status    string
	ErrKind   string
	Message   string
	Saved     int
	Skipped   int
	CreatedAt time.Time
}

// AttemptFilter narrows a history listing.
type AttemptFilter struct {
	Since      time.Time
	FailedOnly bool
	Limit      uint64
}
