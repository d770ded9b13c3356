package cfg

import (
	"errors"
	"fmt"
	"strings"

	"tubaudio/internal/domain/keys"
	"tubaudio/internal/domain/paths"
	"tubaudio/internal/models"
	"tubaudio/internal/parsing"
	"tubaudio/internal/validation"

	"github.com/spf13/viper"
)

// LoadSettings builds the run settings from Viper (flags, environment, config file).
func LoadSettings() (*models.Settings, error) {
	minFree, err := parsing.ParseByteSize(viper.GetString(keys.MinFree))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", keys.MinFree, err)
	}

	s := &models.Settings{
		BatchFile:     viper.GetString(keys.BatchFile),
		FailureLog:    viper.GetString(keys.FailureLog),
		CookieFile:    viper.GetString(keys.CookieFile),
		DeviceMount:   viper.GetString(keys.DeviceMount),
		MinFreeBytes:  minFree,
		OutputDir:     viper.GetString(keys.OutputDir),
		Transcoder:    viper.GetString(keys.Transcoder),
		YtdlpPath:     viper.GetString(keys.YtdlpPath),
		AudioQuality:  viper.GetString(keys.AudioQuality),
		UserAgent:     viper.GetString(keys.UserAgent),
		URLPrefix:     viper.GetString(keys.URLPrefix),
		CookieBrowser: strings.ToLower(strings.TrimSpace(viper.GetString(keys.CookieBrowser))),
		History:       viper.GetBool(keys.History),
		HistoryDB:     viper.GetString(keys.HistoryDB),
	}
	if s.HistoryDB == "" {
		s.HistoryDB = paths.DBFilePath
	}
	if s.AudioQuality, err = validation.ValidateAudioQuality(s.AudioQuality); err != nil {
		return nil, err
	}

	if err := validateSettings(s); err != nil {
		return nil, err
	}
	return s, nil
}

// validateSettings checks for settings the downloader cannot run without.
func validateSettings(s *models.Settings) error {
	required := map[string]string{
		keys.FailureLog:  s.FailureLog,
		keys.DeviceMount: s.DeviceMount,
		keys.OutputDir:   s.OutputDir,
		keys.Transcoder:  s.Transcoder,
		keys.URLPrefix:   s.URLPrefix,
	}

	var errs []error
	for key, val := range required {
		if strings.TrimSpace(val) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", key))
		}
	}
	if s.History && s.HistoryDB == "" {
		errs = append(errs, fmt.Errorf("%s must be set when %s is enabled", keys.HistoryDB, keys.History))
	}
	return errors.Join(errs...)
}
