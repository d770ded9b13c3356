// Package paths initializes tubaudio's program file paths.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tubaudio/internal/domain/consts"
)

const (
	tDir     = ".tubaudio"
	tDBFile  = "history.db"
	tLogFile = "tubaudio.log"
)

// File and directory path strings.
var (
	HomeTubaudioDir string
	DBFilePath      string
	LogFilePath     string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}

	// Home dir ~/.tubaudio
	HomeTubaudioDir = filepath.Join(userHomeDir, tDir)
	if _, err := os.Stat(HomeTubaudioDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeTubaudioDir, consts.PermsGenericDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	DBFilePath = filepath.Join(HomeTubaudioDir, tDBFile)
	LogFilePath = filepath.Join(HomeTubaudioDir, tLogFile)
	return nil
}
