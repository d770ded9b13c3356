package parsing

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ParseByteSize parses sizes like "100MiB", "0.5GB" or "104857600".
func ParseByteSize(input string) (uint64, error) {
	n, err := humanize.ParseBytes(input)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", input, err)
	}
	return n, nil
}
