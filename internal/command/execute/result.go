package execute

import (
	"encoding/json"
	"fmt"
	"strings"

	"tubaudio/internal/domain/command"
	"tubaudio/internal/models"
)

// extractedInfo is the subset of yt-dlp's info JSON tubaudio reads.
type extractedInfo struct {
	Type    string           `json:"_type"`
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Entries []*extractedInfo `json:"entries"`
}

// ParseResult decodes yt-dlp's single-JSON output into a tagged result.
//
// Empty output or a JSON null is an absent result. Nested playlists are flattened.
func ParseResult(stdout string) (models.ExtractResult, error) {
	line := lastJSONLine(stdout)
	if line == "" || line == "null" {
		return models.AbsentResult(), nil
	}

	var info *extractedInfo
	if err := json.Unmarshal([]byte(line), &info); err != nil {
		return models.ExtractResult{}, fmt.Errorf("failed to decode yt-dlp output: %w", err)
	}
	if info == nil {
		return models.AbsentResult(), nil
	}

	if !info.isCollection() {
		return models.SingleResult(&models.Item{ID: info.ID, Title: info.Title}), nil
	}
	return models.CollectionResult(flatten(info.Entries)...), nil
}

func (i *extractedInfo) isCollection() bool {
	return i.Type == command.TypePlaylist || i.Type == command.TypeMultiVideo || i.Entries != nil
}

// flatten turns nested collections into one list, keeping nil slots.
func flatten(entries []*extractedInfo) []*models.Item {
	items := make([]*models.Item, 0, len(entries))
	for _, e := range entries {
		switch {
		case e == nil:
			items = append(items, nil)
		case e.isCollection():
			items = append(items, flatten(e.Entries)...)
		default:
			items = append(items, &models.Item{ID: e.ID, Title: e.Title})
		}
	}
	return items
}

// lastJSONLine returns the last line that looks like a JSON document.
func lastJSONLine(stdout string) string {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "{") || line == "null" {
			return line
		}
	}
	return ""
}
