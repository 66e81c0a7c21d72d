package model

// DownloadMode selects what a download produces
type DownloadMode string

const (
	ModeVideo DownloadMode = "video"
	ModeAudio DownloadMode = "audio"
)

// String returns the string representation of DownloadMode
func (m DownloadMode) String() string {
	return string(m)
}

// ProgressStatusDownloading is the only engine status that carries progress
const ProgressStatusDownloading = "downloading"

// DownloadOptions is what the user asked for
type DownloadOptions struct {
	URL         string
	Mode        DownloadMode
	Resolution  int // ignored in audio mode, 0 means "not chosen"
	Destination string
}

// TranscodeDirective asks the engine to convert the result after download
type TranscodeDirective struct {
	Codec   string // e.g. "mp3"
	Quality string // e.g. "192K"
}

// DownloadRequest is the engine configuration built for one download.
// It is never persisted.
type DownloadRequest struct {
	URL            string
	Mode           DownloadMode
	FormatSelector string
	OutputTemplate string
	Transcode      *TranscodeDirective // nil in video mode
}

// ProgressEvent is one progress report from the engine
type ProgressEvent struct {
	Status  string
	Percent string // engine formatted, e.g. " 42.3%"
}
