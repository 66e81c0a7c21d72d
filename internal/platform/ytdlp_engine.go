package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/model"
)

// Engine tuning
const (
	DefaultProgressInterval = 250 * time.Millisecond
	maxStderrInError        = 2000
)

// ErrEmptyMetadata is returned when yt-dlp exits cleanly without printing JSON
var ErrEmptyMetadata = errors.New("yt-dlp returned no metadata")

// YTDLPEngine drives the yt-dlp binary through go-ytdlp. It serves both the
// metadata extraction and the download side of the app.
type YTDLPEngine struct {
	mu               sync.RWMutex
	executable       string // empty means go-ytdlp's own resolution
	ffmpegLocation   string
	progressInterval time.Duration
	log              zerolog.Logger
}

// NewYTDLPEngine creates an engine. Both paths are optional.
func NewYTDLPEngine(executable, ffmpegLocation string) *YTDLPEngine {
	return &YTDLPEngine{
		executable:       strings.TrimSpace(executable),
		ffmpegLocation:   strings.TrimSpace(ffmpegLocation),
		progressInterval: DefaultProgressInterval,
		log:              logging.For("ytdlp"),
	}
}

// SetProgressInterval sets how often progress callbacks fire
func (e *YTDLPEngine) SetProgressInterval(interval time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progressInterval = interval
}

// Configure swaps the executable paths. Calls already running keep the old ones.
func (e *YTDLPEngine) Configure(executable, ffmpegLocation string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executable = strings.TrimSpace(executable)
	e.ffmpegLocation = strings.TrimSpace(ffmpegLocation)
}

// installYTDLP is replaced in tests to avoid a network download
var installYTDLP = ytdlp.Install

// Install downloads a managed yt-dlp build when none is available and
// returns the path of the executable.
func Install(ctx context.Context) (string, error) {
	resolved, err := installYTDLP(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	log := logging.For("ytdlp")
	log.Info().Str("op", "ytdlp/install").Str("path", resolved.Executable).Msg("yt-dlp ready")
	return resolved.Executable, nil
}

// paths returns the configured executable and ffmpeg location
func (e *YTDLPEngine) paths() (executable, ffmpegLocation string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.executable, e.ffmpegLocation
}

// newCommand returns a command with the options shared by every call
func (e *YTDLPEngine) newCommand() *ytdlp.Command {
	executable, ffmpegLocation := e.paths()

	cmd := ytdlp.New().NoWarnings().NoPlaylist()
	if executable != "" {
		cmd = cmd.SetExecutable(executable)
	}
	if ffmpegLocation != "" {
		cmd = cmd.FFmpegLocation(ffmpegLocation)
	}
	return cmd
}

// ExtractInfo returns the single-JSON metadata dump for url without
// downloading any media.
func (e *YTDLPEngine) ExtractInfo(ctx context.Context, url string) ([]byte, error) {
	cmd := e.newCommand().SkipDownload().DumpSingleJSON()

	e.log.Debug().Str("op", "ytdlp/extract").Str("url", url).Msg("Extracting metadata")
	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, engineError(res, err)
	}

	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return nil, ErrEmptyMetadata
	}
	return []byte(out), nil
}

// Run performs one download and relays every progress report to onProgress
func (e *YTDLPEngine) Run(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) error {
	cmd := e.newCommand().
		Format(req.FormatSelector).
		Output(req.OutputTemplate)

	if req.Transcode != nil {
		cmd = cmd.ExtractAudio().
			AudioFormat(req.Transcode.Codec).
			AudioQuality(req.Transcode.Quality)
	}

	if onProgress != nil {
		e.mu.RLock()
		interval := e.progressInterval
		e.mu.RUnlock()
		cmd = cmd.ProgressFunc(interval, func(update ytdlp.ProgressUpdate) {
			onProgress(model.ProgressEvent{
				Status:  string(update.Status),
				Percent: update.PercentString(),
			})
		})
	}

	e.log.Debug().
		Str("op", "ytdlp/run").
		Str("url", req.URL).
		Str("format", req.FormatSelector).
		Str("output", req.OutputTemplate).
		Bool("transcode", req.Transcode != nil).
		Msg("Starting download")

	res, err := cmd.Run(ctx, req.URL)
	if err != nil {
		return engineError(res, err)
	}
	return nil
}

// engineError folds yt-dlp's stderr into the returned error so callers can
// show (and classify) the engine's own message.
func engineError(res *ytdlp.Result, err error) error {
	if res == nil {
		return err
	}
	stderr := strings.TrimSpace(res.Stderr)
	if stderr == "" || strings.Contains(err.Error(), stderr) {
		return err
	}
	if len(stderr) > maxStderrInError {
		stderr = stderr[len(stderr)-maxStderrInError:]
	}
	return fmt.Errorf("%w: %s", err, stderr)
}
