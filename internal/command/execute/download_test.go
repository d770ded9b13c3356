package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"tubaudio/internal/command/builder"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"
)

const testURL = "https://www.youtube.com/watch?v=abc"

// fakeYtdlp writes an executable that prints stdout and stderr and exits with code.
func fakeYtdlp(t *testing.T, stdout, stderr string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp requires a POSIX shell")
	}

	dir := t.TempDir()
	outFile := filepath.Join(dir, "stdout")
	errFile := filepath.Join(dir, "stderr")
	if err := os.WriteFile(outFile, []byte(stdout), 0o644); err != nil {
		t.Fatalf("failed to write stdout fixture: %v", err)
	}
	if err := os.WriteFile(errFile, []byte(stderr), 0o644); err != nil {
		t.Fatalf("failed to write stderr fixture: %v", err)
	}

	bin := filepath.Join(dir, "yt-dlp")
	script := fmt.Sprintf("#!/bin/sh\ncat '%s'\ncat '%s' >&2\nexit %d\n", outFile, errFile, code)
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake yt-dlp: %v", err)
	}
	return bin
}

func testConfig(t *testing.T, bin string) models.DownloadConfig {
	t.Helper()
	return builder.NewDownloadCommandBuilder(&models.Settings{
		OutputDir:  t.TempDir(),
		YtdlpPath:  bin,
		Transcoder: "ffmpeg",
	}).Config()
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevConsole, prevLevel := logging.Console, logging.Level
	var buf bytes.Buffer
	logging.Console = &buf
	t.Cleanup(func() {
		logging.Console = prevConsole
		logging.Level = prevLevel
	})
	return &buf
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		stderr   string
		code     int
		wantKind models.ResultKind
		fail     bool
		wantErr  models.ErrKind
		wantMsg  string
		entries  int
		nilSlots int
	}{
		{
			name:     "unavailable URL prints null and exits 1",
			stdout:   "null\n",
			stderr:   "ERROR: [youtube] abc: Video unavailable\n",
			code:     1,
			wantKind: models.ResultAbsent,
		},
		{
			name:     "playlist with unavailable entries exits 1",
			stdout:   `{"_type": "playlist", "entries": [{"id": "1", "title": "One"}, null, {"id": "3", "title": "Three"}]}` + "\n",
			stderr:   "ERROR: [youtube] 2: Private video\n",
			code:     1,
			wantKind: models.ResultCollection,
			entries:  3,
			nilSlots: 1,
		},
		{
			name:     "single video exits 0",
			stdout:   "[info] downloading\n" + `{"_type": "video", "id": "abc", "title": "Song"}` + "\n",
			wantKind: models.ResultSingle,
		},
		{
			name:     "no output exits 0",
			wantKind: models.ResultAbsent,
		},
		{
			name:    "no JSON and exit 1 is an extraction error",
			stderr:  "WARNING: something\nERROR: Unsupported URL: " + testURL + "\n",
			code:    1,
			fail:    true,
			wantErr: models.ExtractionError,
			wantMsg: "ERROR: Unsupported URL: " + testURL,
		},
		{
			name:    "malformed JSON and exit 0 is unexpected",
			stdout:  "{not json\n",
			fail:    true,
			wantErr: models.UnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietLogs(t)
			cfg := testConfig(t, fakeYtdlp(t, tt.stdout, tt.stderr, tt.code))

			res, err := NewYtdlpExtractor().Extract(context.Background(), testURL, cfg)

			if tt.fail {
				var dlErr *models.DownloadError
				if !errors.As(err, &dlErr) {
					t.Fatalf("expected *DownloadError, got %v", err)
				}
				if dlErr.Kind != tt.wantErr {
					t.Fatalf("expected %v error, got %v (%v)", tt.wantErr, dlErr.Kind, dlErr)
				}
				if dlErr.URL != testURL {
					t.Fatalf("expected URL %q on error, got %q", testURL, dlErr.URL)
				}
				if tt.wantMsg != "" && dlErr.Error() != tt.wantMsg {
					t.Fatalf("expected message %q, got %q", tt.wantMsg, dlErr.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != tt.wantKind {
				t.Fatalf("expected %v result, got %v", tt.wantKind, res.Kind)
			}
			if tt.wantKind == models.ResultSingle && (res.Single == nil || res.Single.Title != "Song") {
				t.Fatalf("unexpected single item %+v", res.Single)
			}
			if tt.wantKind == models.ResultCollection {
				if len(res.Entries) != tt.entries {
					t.Fatalf("expected %d entries, got %d", tt.entries, len(res.Entries))
				}
				nils := 0
				for _, e := range res.Entries {
					if e == nil {
						nils++
					}
				}
				if nils != tt.nilSlots {
					t.Fatalf("expected %d unavailable slots, got %d", tt.nilSlots, nils)
				}
			}
		})
	}
}

func TestExtract_LogsStderrAtDebugLevel(t *testing.T) {
	buf := quietLogs(t)
	logging.Level = 2
	cfg := testConfig(t, fakeYtdlp(t, "null\n", "[debug] Command-line config: ['-v']\n", 0))

	if _, err := NewYtdlpExtractor().Extract(context.Background(), testURL, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "[debug] Command-line config") {
		t.Fatalf("expected yt-dlp stderr in debug output, got:\n%s", buf.String())
	}
}

func TestExtract_StderrHiddenBelowDebugLevel(t *testing.T) {
	buf := quietLogs(t)
	logging.Level = 0
	cfg := testConfig(t, fakeYtdlp(t, "null\n", "[debug] Command-line config: ['-v']\n", 0))

	if _, err := NewYtdlpExtractor().Extract(context.Background(), testURL, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "[debug] Command-line config") {
		t.Fatalf("stderr should not be printed at level 0")
	}
}
