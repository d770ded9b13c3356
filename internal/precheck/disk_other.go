//go:build !unix

package precheck

import (
	"errors"

	"tubaudio/internal/models"
)

func diskUsage(string) (models.DiskUsage, error) {
	return models.DiskUsage{}, errors.New("disk usage is not supported on this platform")
}
