//go:build unix

package precheck

import (
	"tubaudio/internal/models"

	"golang.org/x/sys/unix"
)

// diskUsage reads filesystem stats for path.
func diskUsage(path string) (models.DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return models.DiskUsage{}, err
	}

	bsize := uint64(st.Bsize)
	total := uint64(st.Blocks) * bsize
	return models.DiskUsage{
		Total: total,
		Used:  total - uint64(st.Bfree)*bsize,
		Free:  uint64(st.Bavail) * bsize,
	}, nil
}
