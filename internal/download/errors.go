package download

import (
	"errors"
	"strings"

	"github.com/ytget/tubefetch/internal/model"
)

// transcoderKeywords identify a missing ffmpeg in engine output. yt-dlp has
// no machine-readable code for this case, so this is a text heuristic.
var transcoderKeywords = []string{"ffmpeg", "ffprobe"}

// Classify maps a download failure onto the user-facing taxonomy:
//
//	model.ErrTranscoderMissing anywhere in the chain -> KindTranscoderMissing
//	message mentions ffmpeg or ffprobe (any case)    -> KindTranscoderMissing
//	anything else                                    -> KindDownload
//
// Errors that are already classified pass through unchanged.
func Classify(err error, mode model.DownloadMode) error {
	if err == nil {
		return nil
	}

	var opErr *model.OperationError
	if errors.As(err, &opErr) {
		return err
	}

	kind := model.KindDownload
	if IsTranscoderMissing(err) {
		kind = model.KindTranscoderMissing
	}
	return &model.OperationError{Kind: kind, Mode: mode, Err: err}
}

// IsTranscoderMissing reports whether err means ffmpeg is unavailable
func IsTranscoderMissing(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, model.ErrTranscoderMissing) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, keyword := range transcoderKeywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
