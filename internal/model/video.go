package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultVideoTitle is shown when the engine reports no title
const DefaultVideoTitle = "Unknown Title"

// ResolutionSuffix is appended to heights in selector labels
const ResolutionSuffix = "p"

// VideoInfo holds the metadata returned by a fetch
type VideoInfo struct {
	Title string
	// Resolutions is the catalog of distinct heights, strictly increasing
	Resolutions []int
}

// MaxResolution returns the highest available height
func (v *VideoInfo) MaxResolution() (int, bool) {
	if v == nil || len(v.Resolutions) == 0 {
		return 0, false
	}
	return v.Resolutions[len(v.Resolutions)-1], true
}

// ResolutionLabel renders a height for display (720 -> "720p")
func ResolutionLabel(height int) string {
	return strconv.Itoa(height) + ResolutionSuffix
}

// ResolutionLabels renders the whole catalog, preserving order
func ResolutionLabels(heights []int) []string {
	labels := make([]string, 0, len(heights))
	for _, h := range heights {
		labels = append(labels, ResolutionLabel(h))
	}
	return labels
}

// ParseResolution converts a selector label back into a height.
// Bare numbers ("720") are accepted as well.
func ParseResolution(label string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(label), ResolutionSuffix)
	height, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid resolution %q: %w", label, err)
	}
	if height <= 0 {
		return 0, fmt.Errorf("invalid resolution %q: height must be positive", label)
	}
	return height, nil
}
