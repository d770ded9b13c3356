package main

import (
	"tubaudio/internal/command/execute"
	"tubaudio/internal/database"
	"tubaudio/internal/downloads"
	"tubaudio/internal/models"
	"tubaudio/internal/precheck"
	"tubaudio/internal/repo"
	"tubaudio/internal/utils/browser"
	"tubaudio/internal/utils/logging"
)

// initializeDownloader wires the downloader for the current run.
//
// The returned cleanup closes the history database when one was opened.
func initializeDownloader(s *models.Settings, runID string) (dl *downloads.Downloader, cleanup func(), err error) {
	dl = downloads.NewDownloader(s, runID, precheck.New(s), execute.NewYtdlpExtractor())
	cleanup = func() {}

	if s.History {
		db, err := database.InitDB(s.HistoryDB)
		if err != nil {
			return nil, nil, err
		}
		logging.D(1, "Recording attempts to %q", s.HistoryDB)
		dl.WithHistory(repo.GetAttemptStore(db.DB))
		cleanup = func() {
			if err := db.Close(); err != nil {
				logging.E(0, "Failed to close history database: %v", err)
			}
		}
	}

	if s.CookieBrowser != "" {
		logging.D(1, "Cookies will be exported from %q when %q is missing", s.CookieBrowser, s.CookieFile)
		dl.WithCookieExporter(browser.NewCookieExporter(s.CookieBrowser))
	}
	return dl, cleanup, nil
}
