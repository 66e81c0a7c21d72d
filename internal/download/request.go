package download

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/tubefetch/internal/model"
	"github.com/ytget/tubefetch/internal/transcode"
)

// Format selectors and templates
const (
	// DefaultResolution is used when a video download starts before any fetch
	DefaultResolution = 720

	VideoFormatTemplate = "bestvideo[height<=%d]+bestaudio/best[height<=%d]"
	AudioFormatSelector = "bestaudio/best"
	OutputFileTemplate  = "%(title)s.%(ext)s"
)

// VideoFormatSelector picks the best streams no taller than height
func VideoFormatSelector(height int) string {
	return fmt.Sprintf(VideoFormatTemplate, height, height)
}

// OutputTemplate places the engine-resolved title and extension in dir
func OutputTemplate(dir string) string {
	return filepath.Join(dir, OutputFileTemplate)
}

// BuildRequest turns user options into an engine request. Audio requests
// always carry the MP3 transcode directive, video requests never do.
func BuildRequest(opts model.DownloadOptions) (model.DownloadRequest, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return model.DownloadRequest{}, model.ErrEmptyURL
	}
	dest := strings.TrimSpace(opts.Destination)
	if dest == "" {
		return model.DownloadRequest{}, model.ErrNoDestination
	}

	req := model.DownloadRequest{
		URL:            url,
		Mode:           opts.Mode,
		OutputTemplate: OutputTemplate(dest),
	}

	switch opts.Mode {
	case model.ModeVideo:
		height := opts.Resolution
		if height <= 0 {
			height = DefaultResolution
		}
		req.FormatSelector = VideoFormatSelector(height)
	case model.ModeAudio:
		req.FormatSelector = AudioFormatSelector
		req.Transcode = transcode.AudioMP3()
	default:
		return model.DownloadRequest{}, fmt.Errorf("unknown download mode %q", opts.Mode)
	}

	return req, nil
}
