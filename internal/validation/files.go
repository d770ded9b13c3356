// Package validation checks user-supplied paths and values.
package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tubaudio/internal/domain/consts"
	"tubaudio/internal/utils/logging"
)

// ValidateFile validates that the file exists, else creates it if desired.
func ValidateFile(f string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting file %q...", f)

	info, err := os.Stat(f)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("file %q is a directory", f)
		}
		return info, nil

	case errors.Is(err, fs.ErrNotExist) && createIfNotFound:
		if err := os.MkdirAll(filepath.Dir(f), consts.PermsGenericDir); err != nil {
			return nil, fmt.Errorf("failed to create directory for %q: %w", f, err)
		}
		file, err := os.OpenFile(f, os.O_CREATE|os.O_WRONLY, consts.PermsLogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create file %q: %w", f, err)
		}
		if err := file.Close(); err != nil {
			return nil, err
		}
		logging.D(1, "Created file %q", f)
		return os.Stat(f)

	default:
		return nil, fmt.Errorf("file %q: %w", f, err)
	}
}

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil

	case errors.Is(err, fs.ErrNotExist) && createIfNotFound:
		if err := os.MkdirAll(dir, consts.PermsAudioDir); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		logging.D(1, "Created directory %q", dir)
		return os.Stat(dir)

	default:
		return nil, fmt.Errorf("directory %q: %w", dir, err)
	}
}
