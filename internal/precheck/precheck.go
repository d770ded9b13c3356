// Package precheck verifies the target device and transcoder before a download starts.
package precheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"tubaudio/internal/domain/command"
	"tubaudio/internal/domain/consts"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"

	"github.com/dustin/go-humanize"
)

var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrInsufficientSpace = errors.New("insufficient space")
	ErrTranscoderMissing = errors.New("transcoder not available")
)

// Checker runs the environment checks in order, stopping at the first failure.
type Checker struct {
	MountPath    string
	MinFreeBytes uint64
	Transcoder   string

	Stat      func(name string) (os.FileInfo, error)
	DiskUsage func(path string) (models.DiskUsage, error)
	Probe     func(ctx context.Context, bin string) error
}

// New returns a Checker for the device and transcoder in s.
func New(s *models.Settings) *Checker {
	return &Checker{
		MountPath:    s.DeviceMount,
		MinFreeBytes: s.MinFreeBytes,
		Transcoder:   s.Transcoder,
		Stat:         os.Stat,
		DiskUsage:    diskUsage,
		Probe:        probeTranscoder,
	}
}

// Run performs the checks and returns the measured disk usage.
func (c *Checker) Run(ctx context.Context) (models.DiskUsage, error) {
	if _, err := c.Stat(c.MountPath); err != nil {
		return models.DiskUsage{}, fmt.Errorf("%w: %q is not mounted, check the device is connected", ErrDeviceNotFound, c.MountPath)
	}

	usage, err := c.DiskUsage(c.MountPath)
	if err != nil {
		return models.DiskUsage{}, fmt.Errorf("failed to read disk usage of %q: %w", c.MountPath, err)
	}

	freeGB := float64(usage.Free) / consts.BytesPerGB
	if usage.Free < c.MinFreeBytes {
		return usage, fmt.Errorf("%w on device: only %.2fGB available (need %s), free up space and try again",
			ErrInsufficientSpace, freeGB, humanize.IBytes(c.MinFreeBytes))
	}

	logging.I("Free space on device: %.2fGB", freeGB)

	if err := c.Probe(ctx, c.Transcoder); err != nil {
		return usage, fmt.Errorf("%w: %q is not installed or not in PATH: %v", ErrTranscoderMissing, c.Transcoder, err)
	}
	return usage, nil
}

// probeTranscoder runs "<bin> -version" and expects a zero exit code.
func probeTranscoder(ctx context.Context, bin string) error {
	if bin == "" {
		bin = command.FFmpeg
	}
	return exec.CommandContext(ctx, bin, command.FFmpegVersion).Run()
}
