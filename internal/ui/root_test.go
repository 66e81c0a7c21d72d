package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/tubefetch/internal/config"
	"github.com/ytget/tubefetch/internal/download"
	"github.com/ytget/tubefetch/internal/model"
)

type stubFetcher struct{}

func (stubFetcher) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	return &model.VideoInfo{Title: "Stub", Resolutions: []int{720}}, nil
}

type stubDownloader struct{}

func (stubDownloader) Download(ctx context.Context, opts model.DownloadOptions, onProgress download.ProgressFunc) error {
	return nil
}

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewRootUI(ctx, window, app, settings, stubFetcher{}, stubDownloader{})
}

func TestRootUI_WindowTitle(t *testing.T) {
	ui := newTestRootUI(t)

	if got := ui.window.Title(); got != "YouTube Downloader" {
		t.Errorf("Expected window title 'YouTube Downloader', got %q", got)
	}
}

func TestRootUI_SetResolutions(t *testing.T) {
	ui := newTestRootUI(t)

	ui.SetResolutions([]string{"360p", "720p"}, "720p")
	if ui.resolutionSelect.Selected != "720p" {
		t.Errorf("Expected 720p selected, got %q", ui.resolutionSelect.Selected)
	}
	if len(ui.resolutionSelect.Options) != 2 {
		t.Errorf("Expected 2 options, got %v", ui.resolutionSelect.Options)
	}

	ui.SetResolutions(nil, "")
	if ui.resolutionSelect.Selected != "" {
		t.Errorf("Expected selection cleared, got %q", ui.resolutionSelect.Selected)
	}
	if len(ui.resolutionSelect.Options) != 0 {
		t.Errorf("Expected no options, got %v", ui.resolutionSelect.Options)
	}
}

func TestRootUI_SetBusy(t *testing.T) {
	ui := newTestRootUI(t)

	ui.SetBusy(true)
	if !ui.fetchBtn.Disabled() || !ui.videoBtn.Disabled() || !ui.audioBtn.Disabled() {
		t.Error("Expected action buttons disabled while busy")
	}

	ui.SetBusy(false)
	if ui.fetchBtn.Disabled() || ui.videoBtn.Disabled() || ui.audioBtn.Disabled() {
		t.Error("Expected action buttons enabled when idle")
	}
}

func TestRootUI_ProgressAndTitle(t *testing.T) {
	ui := newTestRootUI(t)

	ui.SetProgress(42)
	if got, _ := ui.progress.Get(); got != 42 {
		t.Errorf("Expected progress 42, got %v", got)
	}

	ui.SetTitle("Some video")
	if got, _ := ui.title.Get(); got != "Some video" {
		t.Errorf("Expected title, got %q", got)
	}

	ui.SetTitle("")
	if got, _ := ui.title.Get(); got != ui.localization.GetText(KeyNoTitle) {
		t.Errorf("Expected placeholder title, got %q", got)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://youtube.com/watch?v=abc", false},
		{"http://youtu.be/abc", false},
		{"ftp://example.com/file", true},
		{"youtube.com/watch?v=abc", true},
	}

	for _, tt := range tests {
		if err := validateURL(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged, got %q", got)
	}
	if got := truncate("абвгдеёжзи", 5); got != "абвг…" {
		t.Errorf("Expected rune-safe truncation, got %q", got)
	}
}
