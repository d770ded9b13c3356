package file

import (
	"fmt"
	"os"

	"tubaudio/internal/domain/consts"
)

// AppendFailure appends a "url: error" line to the failure log at path.
func AppendFailure(path, url string, failure error) error {
	msg := "<nil>"
	if failure != nil {
		msg = failure.Error()
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open failure log %q: %w", path, err)
	}

	if _, err := fmt.Fprintf(f, "%s: %s\n", url, msg); err != nil {
		f.Close()
		return fmt.Errorf("failed to write failure log %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close failure log %q: %w", path, err)
	}
	return nil
}
