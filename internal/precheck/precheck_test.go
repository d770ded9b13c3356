package precheck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tubaudio/internal/models"
)

func testChecker(t *testing.T, free uint64, probeErr error) (*Checker, *int) {
	t.Helper()
	probes := 0
	c := &Checker{
		MountPath:    t.TempDir(),
		MinFreeBytes: 100 * 1024 * 1024,
		Transcoder:   "ffmpeg",
		Stat:         os.Stat,
		DiskUsage: func(string) (models.DiskUsage, error) {
			return models.DiskUsage{Total: 10 * free, Used: 9 * free, Free: free}, nil
		},
		Probe: func(context.Context, string) error {
			probes++
			return probeErr
		},
	}
	return c, &probes
}

func TestRun_DeviceMissing(t *testing.T) {
	c, probes := testChecker(t, 1<<40, nil)
	c.MountPath = filepath.Join(c.MountPath, "NO NAME")
	c.DiskUsage = func(string) (models.DiskUsage, error) {
		t.Fatalf("disk usage should not be read for a missing device")
		return models.DiskUsage{}, nil
	}

	_, err := c.Run(context.Background())
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "device not found") {
		t.Fatalf("expected device not found message, got %q", err.Error())
	}
	if *probes != 0 {
		t.Fatalf("transcoder should not be probed, got %d probes", *probes)
	}
}

func TestRun_InsufficientSpace(t *testing.T) {
	// 0.05GB
	c, probes := testChecker(t, 53687092, nil)

	_, err := c.Run(context.Background())
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
	if !strings.Contains(err.Error(), "0.05GB") {
		t.Fatalf("expected measured free space in message, got %q", err.Error())
	}
	if *probes != 0 {
		t.Fatalf("transcoder should not be probed, got %d probes", *probes)
	}
}

func TestRun_TranscoderMissing(t *testing.T) {
	c, _ := testChecker(t, 1<<30, errors.New("exec: \"ffmpeg\": executable file not found in $PATH"))

	_, err := c.Run(context.Background())
	if !errors.Is(err, ErrTranscoderMissing) {
		t.Fatalf("expected ErrTranscoderMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "transcoder not available") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRun_OK(t *testing.T) {
	c, probes := testChecker(t, 1<<30, nil)

	usage, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usage.Free != 1<<30 {
		t.Fatalf("expected free bytes to be reported, got %d", usage.Free)
	}
	if *probes != 1 {
		t.Fatalf("expected one transcoder probe, got %d", *probes)
	}
}

func TestRun_ThresholdIsInclusive(t *testing.T) {
	c, _ := testChecker(t, 100*1024*1024, nil)

	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("free space equal to the minimum should pass, got %v", err)
	}
}
