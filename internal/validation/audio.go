package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateAudioQuality checks an MP3 quality value yt-dlp accepts.
//
// Either a VBR level from 0 (best) to 10, or a bitrate such as "192K".
func ValidateAudioQuality(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", fmt.Errorf("audio quality is empty")
	}

	if n, err := strconv.Atoi(q); err == nil {
		if n < 0 || n > 10 {
			return "", fmt.Errorf("audio quality %q out of range (VBR levels are 0-10)", q)
		}
		return q, nil
	}

	rate, ok := strings.CutSuffix(strings.ToUpper(q), "K")
	if !ok {
		return "", fmt.Errorf("audio quality %q is not a VBR level (0-10) or bitrate (e.g. '192K')", q)
	}
	n, err := strconv.Atoi(rate)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid audio bitrate %q", q)
	}
	return rate + "K", nil
}
