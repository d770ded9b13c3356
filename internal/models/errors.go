package models

import "errors"

// ErrKind classifies why a download attempt failed.
type ErrKind int

const (
	UnknownError ErrKind = iota
	EnvironmentError
	ExtractionError
	FilesystemError
)

// String returns the kind name.
func (k ErrKind) String() string {
	switch k {
	case EnvironmentError:
		return "environment"
	case ExtractionError:
		return "extraction"
	case FilesystemError:
		return "filesystem"
	default:
		return "unknown"
	}
}

// DownloadError is a failed attempt for a single URL.
type DownloadError struct {
	Kind ErrKind
	URL  string
	Err  error
}

// NewDownloadError wraps err with a kind and URL.
func NewDownloadError(kind ErrKind, url string, err error) *DownloadError {
	return &DownloadError{
		Kind: kind,
		URL:  url,
		Err:  err,
	}
}

// Error returns the underlying message so failure log lines stay "url: message".
func (e *DownloadError) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind carried by err, or UnknownError if it carries none.
func KindOf(err error) ErrKind {
	var dlErr *DownloadError
	if errors.As(err, &dlErr) {
		return dlErr.Kind
	}
	return UnknownError
}
