// Package logging prints leveled console messages and mirrors them to the program log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"tubaudio/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the highest debug level printed.
	Level = 0

	// Console receives every printed message.
	Console io.Writer = os.Stdout

	mu      sync.Mutex
	fileLog zerolog.Logger = zerolog.Nop()
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging opens (or creates) the log file and tags every entry with runID.
//
// The returned closer must be closed on exit.
func SetupLogging(logFilePath, runID string) (io.Closer, error) {
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}

	mu.Lock()
	fileLog = zerolog.New(f).With().
		Timestamp().
		Str("run", runID).
		Logger()
	mu.Unlock()

	fileLog.Info().Msgf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return f, nil
}

// writeLog sends an already formatted message to the file log. Callers hold mu.
func writeLog(level zerolog.Level, msg string) {
	fileLog.WithLevel(level).Msg(stripAnsiCodes(msg))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
