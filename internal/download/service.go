package download

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/model"
	"github.com/ytget/tubefetch/internal/transcode"
)

// Service handles download operations
type Service struct {
	runner     Runner
	transcoder transcode.Locator // optional pre-flight for audio mode
	log        zerolog.Logger
}

// NewService creates a new download service
func NewService(runner Runner) *Service {
	return &Service{
		runner: runner,
		log:    logging.For("download"),
	}
}

// SetTranscoderLocator enables the ffmpeg check before audio downloads
func (s *Service) SetTranscoderLocator(locator transcode.Locator) {
	s.transcoder = locator
}

// Download runs one download. Progress is reported only for the engine's
// "downloading" status and is always reset to 0 when the attempt ends.
// Partial files are left to the engine's own policy.
func (s *Service) Download(ctx context.Context, opts model.DownloadOptions, onProgress ProgressFunc) error {
	if onProgress != nil {
		defer onProgress(model.ProgressMin)
	}

	req, err := BuildRequest(opts)
	if err != nil {
		return model.NewOperationError(model.KindInvalidInput, err)
	}

	if req.Transcode != nil && s.transcoder != nil {
		if _, err := s.transcoder.Locate(); err != nil {
			s.log.Warn().Str("op", "download/preflight").Err(err).Msg("Transcoder not available")
			return Classify(err, req.Mode)
		}
	}

	started := time.Now()
	s.log.Info().
		Str("op", "download/start").
		Str("url", req.URL).
		Str("mode", req.Mode.String()).
		Str("format", req.FormatSelector).
		Msg("Starting download")

	if err := s.runner.Run(ctx, req, relayProgress(onProgress)); err != nil {
		classified := Classify(err, req.Mode)
		s.log.Error().
			Str("op", "download/run").
			Str("url", req.URL).
			Str("kind", model.KindOf(classified).String()).
			Err(err).
			Msg("Download failed")
		return classified
	}

	s.log.Info().
		Str("op", "download/done").
		Str("url", req.URL).
		Dur("took", time.Since(started)).
		Msg("Download completed")
	return nil
}
