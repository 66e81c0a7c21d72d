package download

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ytget/tubefetch/internal/model"
)

func TestBuildRequest_Video(t *testing.T) {
	req, err := BuildRequest(model.DownloadOptions{
		URL:         "https://youtube.com/watch?v=abc",
		Mode:        model.ModeVideo,
		Resolution:  480,
		Destination: "/tmp/videos",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if req.FormatSelector != "bestvideo[height<=480]+bestaudio/best[height<=480]" {
		t.Errorf("Unexpected format selector %s", req.FormatSelector)
	}
	if req.Transcode != nil {
		t.Error("Video requests must not carry a transcode directive")
	}
	expected := filepath.Join("/tmp/videos", "%(title)s.%(ext)s")
	if req.OutputTemplate != expected {
		t.Errorf("Expected output %s, got %s", expected, req.OutputTemplate)
	}
}

func TestBuildRequest_VideoDefaultResolution(t *testing.T) {
	req, err := BuildRequest(model.DownloadOptions{
		URL:         "https://youtube.com/watch?v=abc",
		Mode:        model.ModeVideo,
		Destination: "/tmp",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if req.FormatSelector != VideoFormatSelector(DefaultResolution) {
		t.Errorf("Expected default resolution selector, got %s", req.FormatSelector)
	}
}

func TestBuildRequest_AudioAlwaysTranscodes(t *testing.T) {
	// Resolution is irrelevant in audio mode
	for _, res := range []int{0, 360, 2160} {
		req, err := BuildRequest(model.DownloadOptions{
			URL:         "https://youtube.com/watch?v=abc",
			Mode:        model.ModeAudio,
			Resolution:  res,
			Destination: "/tmp",
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if req.FormatSelector != AudioFormatSelector {
			t.Errorf("Expected %s, got %s", AudioFormatSelector, req.FormatSelector)
		}
		if req.Transcode == nil {
			t.Fatal("Audio requests must carry a transcode directive")
		}
		if req.Transcode.Codec != "mp3" || req.Transcode.Quality != "192K" {
			t.Errorf("Unexpected directive %+v", req.Transcode)
		}
	}
}

func TestBuildRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts model.DownloadOptions
		want error
	}{
		{"empty url", model.DownloadOptions{Mode: model.ModeVideo, Destination: "/tmp"}, model.ErrEmptyURL},
		{"blank url", model.DownloadOptions{URL: "  ", Mode: model.ModeAudio, Destination: "/tmp"}, model.ErrEmptyURL},
		{"no destination", model.DownloadOptions{URL: "https://x", Mode: model.ModeVideo}, model.ErrNoDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := BuildRequest(model.DownloadOptions{URL: "https://x", Mode: "gif", Destination: "/tmp"}); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
