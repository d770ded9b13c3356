package consts

// Tables
const (
	DBAttempts = "attempts"
)

// Attempt columns
const (
	QAttemptID      = "id"
	QAttemptRunID   = "run_id"
	QAttemptURL     = "url"
	QAttemptStatus  = "status"
	QAttemptKind    = "error_kind"
	QAttemptMessage = "message"
	QAttemptSaved   = "saved"
	QAttemptSkipped = "skipped"
	QAttemptCreated = "created_at"
)

// Attempt statuses
const (
	AttemptSucceeded = "succeeded"
	AttemptFailed    = "failed"
)
