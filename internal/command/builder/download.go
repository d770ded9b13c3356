// Package builder assembles yt-dlp commands from tubaudio settings.
package builder

import (
	"path/filepath"

	"tubaudio/internal/domain/command"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"

	"github.com/lrstanley/go-ytdlp"
)

// DownloadCommandBuilder builds the extraction configuration and command for a download.
type DownloadCommandBuilder struct {
	Settings *models.Settings
}

// NewDownloadCommandBuilder returns a builder for the given settings.
func NewDownloadCommandBuilder(s *models.Settings) *DownloadCommandBuilder {
	return &DownloadCommandBuilder{
		Settings: s,
	}
}

// Config returns the fixed download configuration for one attempt.
func (b *DownloadCommandBuilder) Config() models.DownloadConfig {
	s := b.Settings

	quality := s.AudioQuality
	if quality == "" {
		quality = command.DefaultQuality
	}

	return models.DownloadConfig{
		Format:         command.FormatBestAudio,
		AudioCodec:     command.AudioCodec,
		AudioQuality:   quality,
		OutputTemplate: filepath.Join(s.OutputDir, command.FilenameSyntax),
		UserAgent:      s.UserAgent,
		CookieFile:     s.CookieFile,
		Verbose:        true,
		IgnoreErrors:   true,
		Executable:     s.YtdlpPath,
		Transcoder:     s.Transcoder,
	}
}

// Command builds the yt-dlp command for cfg.
//
// The command prints the final info JSON after downloading so the result shape can be decoded.
func Command(cfg models.DownloadConfig) *ytdlp.Command {
	cmd := ytdlp.New().
		Format(cfg.Format).
		ExtractAudio().
		AudioFormat(cfg.AudioCodec).
		AudioQuality(cfg.AudioQuality).
		Output(cfg.OutputTemplate).
		DumpSingleJSON().
		NoSimulate()

	if cfg.UserAgent != "" {
		cmd.AddHeaders(command.UserAgentHeader + cfg.UserAgent)
	}
	if cfg.CookieFile != "" {
		cmd.Cookies(cfg.CookieFile)
	}
	if cfg.Verbose {
		cmd.Verbose()
	}
	if cfg.IgnoreErrors {
		cmd.IgnoreErrors()
	}
	if cfg.Executable != "" {
		cmd.SetExecutable(cfg.Executable)
	}

	logging.D(1, "Built yt-dlp command for template %q (format %s, %s@%s)",
		cfg.OutputTemplate, cfg.Format, cfg.AudioCodec, cfg.AudioQuality)
	return cmd
}

// ExtraArgs returns arguments go-ytdlp has no builder method for, placed before the URL.
func ExtraArgs(cfg models.DownloadConfig) []string {
	var args []string
	if cfg.Transcoder != "" && cfg.Transcoder != command.FFmpeg {
		args = append(args, command.FFmpegLocation, cfg.Transcoder)
	}
	return args
}
