package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/tubefetch/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyYTDLPPath          = "ytdlp_path"
	KeyFFmpegPath         = "ffmpeg_path"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackDownloadDir       = "downloads"
)

// Overrides are per-process values from flags or the environment.
// They win over saved preferences and are never persisted. Saving a
// field through its setter drops that field's override for the session.
type Overrides struct {
	DownloadDir string
	YTDLPPath   string
	FFmpegPath  string
}

// Settings manages application configuration
type Settings struct {
	app       fyne.App
	overrides Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ApplyOverrides sets session overrides, blank fields are ignored
func (s *Settings) ApplyOverrides(o Overrides) {
	s.overrides = Overrides{
		DownloadDir: strings.TrimSpace(o.DownloadDir),
		YTDLPPath:   strings.TrimSpace(o.YTDLPPath),
		FFmpegPath:  strings.TrimSpace(o.FFmpegPath),
	}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	if s.overrides.DownloadDir != "" {
		return s.overrides.DownloadDir
	}
	dir := s.SavedDownloadDirectory()
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(".", FallbackDownloadDir)
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SavedDownloadDirectory returns the stored directory, ignoring overrides
func (s *Settings) SavedDownloadDirectory() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.overrides.DownloadDir = ""
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetYTDLPPath returns the yt-dlp executable, empty means "resolve from PATH"
func (s *Settings) GetYTDLPPath() string {
	if s.overrides.YTDLPPath != "" {
		return s.overrides.YTDLPPath
	}
	return s.SavedYTDLPPath()
}

// SavedYTDLPPath returns the stored yt-dlp path, ignoring overrides
func (s *Settings) SavedYTDLPPath() string {
	return s.app.Preferences().String(KeyYTDLPPath)
}

// SetYTDLPPath sets the yt-dlp executable path
func (s *Settings) SetYTDLPPath(path string) {
	s.overrides.YTDLPPath = ""
	s.app.Preferences().SetString(KeyYTDLPPath, strings.TrimSpace(path))
}

// GetFFmpegPath returns the ffmpeg executable, empty means "resolve from PATH"
func (s *Settings) GetFFmpegPath() string {
	if s.overrides.FFmpegPath != "" {
		return s.overrides.FFmpegPath
	}
	return s.SavedFFmpegPath()
}

// SavedFFmpegPath returns the stored ffmpeg path, ignoring overrides
func (s *Settings) SavedFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg location, a binary or its directory
func (s *Settings) SetFFmpegPath(path string) {
	s.overrides.FFmpegPath = ""
	s.app.Preferences().SetString(KeyFFmpegPath, strings.TrimSpace(path))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to open the folder after a download
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the folder after a download
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
