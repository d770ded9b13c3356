// Package execute runs yt-dlp and decodes what it reports.
package execute

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tubaudio/internal/command/builder"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"
)

// YtdlpExtractor downloads and converts media through yt-dlp.
type YtdlpExtractor struct{}

// NewYtdlpExtractor returns a yt-dlp backed extractor.
func NewYtdlpExtractor() *YtdlpExtractor {
	return &YtdlpExtractor{}
}

// Extract runs yt-dlp for url and returns the resolved result shape.
//
// yt-dlp exits non-zero whenever it reports an error, even with ignore-errors set
// (including a fully unavailable URL, for which it prints "null"). Any JSON document
// on stdout therefore wins over the exit status; the exit status only decides the
// outcome when no JSON was printed at all.
func (e *YtdlpExtractor) Extract(ctx context.Context, url string, cfg models.DownloadConfig) (models.ExtractResult, error) {
	cmd := builder.Command(cfg)
	args := append(builder.ExtraArgs(cfg), url)

	logging.I("Executing yt-dlp for: %s", url)
	res, runErr := cmd.Run(ctx, args...)
	if res == nil {
		if runErr == nil {
			return models.AbsentResult(), nil
		}
		return models.ExtractResult{}, models.NewDownloadError(models.ExtractionError, url, fmt.Errorf("yt-dlp command failed: %w", runErr))
	}

	if stderr := strings.TrimRight(res.Stderr, "\n"); stderr != "" {
		logging.D(2, "yt-dlp output for %s:\n%s", url, stderr)
	}

	if lastJSONLine(res.Stdout) == "" {
		if runErr != nil {
			return models.ExtractResult{}, models.NewDownloadError(models.ExtractionError, url, extractionFailure(res.Stderr, runErr))
		}
		return models.AbsentResult(), nil
	}

	result, parseErr := ParseResult(res.Stdout)
	if parseErr != nil {
		if runErr != nil {
			return models.ExtractResult{}, models.NewDownloadError(models.ExtractionError, url, extractionFailure(res.Stderr, runErr))
		}
		return models.ExtractResult{}, models.NewDownloadError(models.UnknownError, url, parseErr)
	}

	if runErr != nil {
		logging.D(1, "yt-dlp exited with %v after reporting a %s result for %s", runErr, result.Kind, url)
	}
	return result, nil
}

// extractionFailure prefers yt-dlp's last "ERROR:" line over the bare exit status.
func extractionFailure(stderr string, runErr error) error {
	lines := strings.Split(stderr, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return errors.New(line)
		}
	}
	return fmt.Errorf("yt-dlp command failed: %w", runErr)
}
