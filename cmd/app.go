package cmd

import (
	"context"
	"os"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/tubefetch/internal/config"
	"github.com/ytget/tubefetch/internal/download"
	"github.com/ytget/tubefetch/internal/info"
	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/platform"
	"github.com/ytget/tubefetch/internal/transcode"
	"github.com/ytget/tubefetch/internal/ui"
)

const (
	AppID   = "com.ytget.tubefetch"
	AppName = "YouTube Downloader"

	// startupProbeTimeout bounds the ffmpeg version probe at launch
	startupProbeTimeout = 5 * time.Second
)

// runApp wires the services and blocks until the window is closed
func runApp(ctx context.Context, opts options) error {
	logging.Init(opts.debug, os.Stderr)
	log := logging.For("app")
	log.Info().Str("op", "app/start").Str("version", Version).Msg("tubefetch starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts, err := installEngine(ctx, opts)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewAppTheme())

	settings := config.NewSettings(fyneApp)
	settings.ApplyOverrides(config.Overrides{
		DownloadDir: opts.outputDir,
		YTDLPPath:   opts.ytdlpPath,
		FFmpegPath:  opts.ffmpeg,
	})

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn().Str("op", "app/start").Str("dir", downloadsDir).Err(err).Msg("Failed to ensure downloads dir")
	}

	locator := transcode.NewLocator(settings.GetFFmpegPath())
	probeTranscoder(ctx, locator)

	engine := platform.NewYTDLPEngine(settings.GetYTDLPPath(), settings.GetFFmpegPath())
	fetcher := info.NewService(engine)
	downloader := download.NewService(engine)
	downloader.SetTranscoderLocator(locator)

	window := fyneApp.NewWindow(AppName)
	root := ui.NewRootUI(ctx, window, fyneApp, settings, fetcher, downloader)
	root.OnSettingsSaved = func(s *config.Settings) {
		engine.Configure(s.GetYTDLPPath(), s.GetFFmpegPath())
		locator.SetPath(s.GetFFmpegPath())
		log.Info().Str("op", "app/settings").Msg("Executable paths updated")
	}

	window.ShowAndRun()
	log.Info().Str("op", "app/stop").Msg("Window closed")
	return nil
}

// installYTDLP fetches a managed yt-dlp build; replaced in tests
var installYTDLP = platform.Install

// installEngine runs the managed install when requested. The installed
// binary is used unless a yt-dlp path was given explicitly.
func installEngine(ctx context.Context, opts options) (options, error) {
	if !opts.install {
		return opts, nil
	}
	path, err := installYTDLP(ctx)
	if err != nil {
		return opts, err
	}
	if opts.ytdlpPath == "" {
		opts.ytdlpPath = path
	}
	return opts, nil
}

// probeTranscoder logs whether ffmpeg is available. Its absence only
// matters for audio and merged video downloads, so it is not fatal.
func probeTranscoder(ctx context.Context, locator transcode.Locator) {
	log := logging.For("app")

	path, err := locator.Locate()
	if err != nil {
		log.Warn().Str("op", "app/ffmpeg").Err(err).Msg("ffmpeg not found, audio downloads will fail")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()

	version, err := transcode.Version(ctx, path)
	if err != nil {
		log.Warn().Str("op", "app/ffmpeg").Str("path", path).Err(err).Msg("Failed to read ffmpeg version")
		return
	}
	log.Info().Str("op", "app/ffmpeg").Str("path", path).Str("version", version).Msg("ffmpeg found")
}
