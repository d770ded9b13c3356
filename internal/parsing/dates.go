// Package parsing converts user-entered values into typed ones.
package parsing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseSince parses a history cutoff.
//
// Accepts Go durations ("36h"), day counts ("7d"), or any date dateparse understands ("Jan 2nd, 2006").
func ParseSince(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}

	if d, err := time.ParseDuration(input); err == nil {
		return now.Add(-d), nil
	}

	if days, ok := strings.CutSuffix(strings.ToLower(input), "d"); ok {
		if n, err := strconv.Atoi(days); err == nil && n >= 0 {
			return now.AddDate(0, 0, -n), nil
		}
	}

	t, err := dateparse.ParseLocal(input)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
	}
	return t, nil
}
