package model

import (
	"math"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	if s.Status != StatusIdle {
		t.Errorf("Expected status Idle, got %s", s.Status)
	}
	if s.Progress != 0 {
		t.Errorf("Expected zero progress, got %f", s.Progress)
	}
}

func TestSession_SetProgress(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{-3, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{130, 100},
		{math.NaN(), 0},
	}

	s := NewSession()
	for _, test := range tests {
		s.SetProgress(test.in)
		if s.Progress != test.expected {
			t.Errorf("SetProgress(%v) stored %v, expected %v", test.in, s.Progress, test.expected)
		}
	}

	s.SetProgress(50)
	s.ResetProgress()
	if s.Progress != 0 {
		t.Errorf("Expected progress 0 after reset, got %v", s.Progress)
	}
}

func TestSession_ApplyInfo(t *testing.T) {
	s := NewSession()

	ok := s.ApplyInfo(&VideoInfo{Title: "Clip", Resolutions: []int{360, 480, 720}})
	if !ok {
		t.Fatal("Expected ApplyInfo to succeed")
	}
	if s.SelectedResolution != 720 {
		t.Errorf("Expected preselected 720, got %d", s.SelectedResolution)
	}
	if s.Title != "Clip" {
		t.Errorf("Expected title 'Clip', got '%s'", s.Title)
	}

	// An empty catalog must not leave the previous selection behind
	ok = s.ApplyInfo(&VideoInfo{Title: "Audio only"})
	if ok {
		t.Error("Expected ApplyInfo to report an empty catalog")
	}
	if s.SelectedResolution != 0 || len(s.Resolutions) != 0 {
		t.Errorf("Expected cleared selection, got %d / %v", s.SelectedResolution, s.Resolutions)
	}
	if s.Title != "Audio only" {
		t.Errorf("Expected title to be kept, got '%s'", s.Title)
	}
}

func TestSession_ApplyInfoCopiesCatalog(t *testing.T) {
	heights := []int{240, 360}
	s := NewSession()
	s.ApplyInfo(&VideoInfo{Resolutions: heights})

	heights[0] = 9999
	if s.Resolutions[0] != 240 {
		t.Error("Session catalog should not alias the fetch result")
	}
}
