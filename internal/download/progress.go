package download

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ytget/tubefetch/internal/model"
)

// ansiEscape matches terminal colour sequences yt-dlp may wrap percentages in
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ParsePercent converts an engine percent string (" 42.3%") to a number
// clamped to [0,100].
func ParsePercent(s string) (float64, error) {
	clean := strings.TrimSpace(ansiEscape.ReplaceAllString(s, ""))
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "%"))
	if clean == "" {
		return 0, fmt.Errorf("empty percent string")
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent string %q: %w", s, err)
	}
	return model.ClampPercent(value), nil
}

// relayProgress forwards "downloading" events as numbers and drops the rest
func relayProgress(onProgress ProgressFunc) func(model.ProgressEvent) {
	return func(ev model.ProgressEvent) {
		if onProgress == nil || ev.Status != model.ProgressStatusDownloading {
			return
		}
		percent, err := ParsePercent(ev.Percent)
		if err != nil {
			return
		}
		onProgress(percent)
	}
}
