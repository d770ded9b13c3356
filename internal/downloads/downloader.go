// Package downloads runs a single URL through prechecks, extraction, and result reporting.
package downloads

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"tubaudio/internal/command/builder"
	"tubaudio/internal/domain/command"
	"tubaudio/internal/domain/consts"
	"tubaudio/internal/file"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"
	"tubaudio/internal/validation"
)

// Prechecker verifies the environment before a download.
type Prechecker interface {
	Run(ctx context.Context) (models.DiskUsage, error)
}

// Extractor resolves a URL and downloads its media according to cfg.
type Extractor interface {
	Extract(ctx context.Context, url string, cfg models.DownloadConfig) (models.ExtractResult, error)
}

// AttemptRecorder stores download attempts.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, a *models.Attempt) error
}

// CookieExporter writes browser cookies for a URL into a cookie file.
type CookieExporter interface {
	Export(rawURL, dest string) (int, error)
}

// Downloader downloads one URL at a time.
type Downloader struct {
	settings  *models.Settings
	runID     string
	checks    Prechecker
	extractor Extractor
	builder   *builder.DownloadCommandBuilder
	history   AttemptRecorder
	cookies   CookieExporter
}

// NewDownloader returns a Downloader using the given collaborators.
func NewDownloader(s *models.Settings, runID string, checks Prechecker, extractor Extractor) *Downloader {
	return &Downloader{
		settings:  s,
		runID:     runID,
		checks:    checks,
		extractor: extractor,
		builder:   builder.NewDownloadCommandBuilder(s),
	}
}

// WithHistory records every attempt to h.
func (d *Downloader) WithHistory(h AttemptRecorder) *Downloader {
	d.history = h
	return d
}

// WithCookieExporter fills a missing cookie file from a browser before each attempt.
func (d *Downloader) WithCookieExporter(c CookieExporter) *Downloader {
	d.cookies = c
	return d
}

// Download processes url once. Failures are printed and appended to the failure log,
// never returned as a Go error.
func (d *Downloader) Download(ctx context.Context, url string) (out models.Outcome) {
	out.URL = url
	defer func() {
		d.recordAttempt(ctx, &out)
	}()

	result, err := d.fetch(ctx, url)
	if err != nil {
		out.Err = d.fail(url, err)
		return out
	}

	out.Result = result.Kind
	switch result.Kind {
	case models.ResultSingle:
		out.Saved = append(out.Saved, d.report(result.Single))

	case models.ResultCollection:
		for _, item := range result.Entries {
			if item == nil {
				logging.I("Skipped unavailable video in playlist: %s", url)
				out.Skipped++
				continue
			}
			out.Saved = append(out.Saved, d.report(item))
		}

	default:
		logging.I("Skipped unavailable content: %s", url)
	}

	out.Success = true
	return out
}

// fetch runs prechecks, prepares the output directory, and invokes the extractor.
func (d *Downloader) fetch(ctx context.Context, url string) (models.ExtractResult, error) {
	if _, err := d.checks.Run(ctx); err != nil {
		return models.ExtractResult{}, models.NewDownloadError(models.EnvironmentError, url, err)
	}

	if _, err := validation.ValidateDirectory(d.settings.OutputDir, true); err != nil {
		return models.ExtractResult{}, models.NewDownloadError(models.FilesystemError, url, err)
	}

	d.ensureCookies(url)

	return d.extractor.Extract(ctx, url, d.builder.Config())
}

// ensureCookies exports browser cookies when a browser is configured and no cookie file exists yet.
func (d *Downloader) ensureCookies(url string) {
	if d.cookies == nil || d.settings.CookieFile == "" {
		return
	}
	if _, err := os.Stat(d.settings.CookieFile); err == nil {
		return
	}

	if _, err := d.cookies.Export(url, d.settings.CookieFile); err != nil {
		logging.E(0, "Could not export browser cookies for %s, continuing without: %v", url, err)
	}
}

// report prints where an item's audio was written and returns that path.
func (d *Downloader) report(item *models.Item) string {
	path := OutputPath(d.settings.OutputDir, item.Title)
	logging.S(0, "Audio saved as: %s", path)
	return path
}

// fail prints the failure, appends it to the failure log, and returns it as a typed error.
func (d *Downloader) fail(url string, err error) *models.DownloadError {
	var dlErr *models.DownloadError
	if !errors.As(err, &dlErr) {
		dlErr = models.NewDownloadError(models.UnknownError, url, err)
	}
	if dlErr.URL == "" {
		dlErr.URL = url
	}

	if dlErr.Kind == models.ExtractionError {
		logging.E(0, "Failed to download %s: %v", url, dlErr)
	} else {
		logging.E(0, "An unexpected error occurred for %s: %v", url, dlErr)
	}

	if logErr := file.AppendFailure(d.settings.FailureLog, url, dlErr); logErr != nil {
		logging.E(0, "Could not write to failure log: %v", logErr)
	}
	return dlErr
}

// recordAttempt stores out in the history store, if one is configured.
func (d *Downloader) recordAttempt(ctx context.Context, out *models.Outcome) {
	if d.history == nil {
		return
	}

	a := &models.Attempt{
		RunID:   d.runID,
		URL:     out.URL,
		Status:  consts.AttemptSucceeded,
		Saved:   len(out.Saved),
		Skipped: out.Skipped,
	}
	if out.Err != nil {
		a.Status = consts.AttemptFailed
		a.ErrKind = out.Err.Kind.String()
		a.Message = out.Err.Error()
	}

	if err := d.history.RecordAttempt(context.WithoutCancel(ctx), a); err != nil {
		logging.E(0, "Could not record attempt for %s: %v", out.URL, err)
	}
}

// OutputPath returns the path reported for a downloaded title.
func OutputPath(outputDir, title string) string {
	return filepath.Join(outputDir, file.SanitizeFilename(title)+command.AudioExt)
}
