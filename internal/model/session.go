package model

import "math"

// Progress bounds, in percent
const (
	ProgressMin = 0.0
	ProgressMax = 100.0
)

// Session is the mutable state behind the main window. It lives for the
// process lifetime and is never persisted.
type Session struct {
	URL                string
	Title              string // empty until a fetch succeeds
	Resolutions        []int
	SelectedResolution int // 0 when nothing is selected
	Destination        string
	Progress           float64 // 0 to 100
	Status             OperationStatus
}

// NewSession creates an idle session
func NewSession() *Session {
	return &Session{Status: StatusIdle}
}

// SetProgress stores progress clamped to [0,100]
func (s *Session) SetProgress(percent float64) {
	s.Progress = ClampPercent(percent)
}

// ResetProgress returns the progress bar to zero
func (s *Session) ResetProgress() {
	s.Progress = ProgressMin
}

// ApplyInfo replaces title and catalog with a fresh fetch result and
// preselects the highest resolution. Returns false when the catalog is empty,
// in which case the previous selection is cleared.
func (s *Session) ApplyInfo(info *VideoInfo) bool {
	s.ClearInfo()
	if info == nil {
		return false
	}
	s.Title = info.Title

	highest, ok := info.MaxResolution()
	if !ok {
		return false
	}
	s.Resolutions = append([]int(nil), info.Resolutions...)
	s.SelectedResolution = highest
	return true
}

// ClearInfo forgets the last fetch result
func (s *Session) ClearInfo() {
	s.Title = ""
	s.Resolutions = nil
	s.SelectedResolution = 0
}

// ClampPercent bounds a percentage to [0,100]
func ClampPercent(percent float64) float64 {
	if percent < ProgressMin || math.IsNaN(percent) {
		return ProgressMin
	}
	if percent > ProgressMax {
		return ProgressMax
	}
	return percent
}
