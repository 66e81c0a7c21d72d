package transcode

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ytget/tubefetch/internal/model"
)

// Audio extraction settings
const (
	AudioCodecMP3  = "mp3"
	AudioQuality   = "192K"
	FFmpegCommand  = "ffmpeg"
	VersionFlag    = "-version"
	VersionPrefix  = "ffmpeg version "
	UnknownVersion = "unknown"
)

// AudioMP3 returns the directive attached to every audio download
func AudioMP3() *model.TranscodeDirective {
	return &model.TranscodeDirective{
		Codec:   AudioCodecMP3,
		Quality: AudioQuality,
	}
}

// PathLocator finds ffmpeg at a configured path or on PATH
type PathLocator struct {
	mu         sync.RWMutex
	configured string
	lookPath   func(string) (string, error)
}

// NewLocator creates a locator. An empty path means "search PATH".
func NewLocator(configuredPath string) *PathLocator {
	return &PathLocator{
		configured: strings.TrimSpace(configuredPath),
		lookPath:   exec.LookPath,
	}
}

// SetPath changes the configured path, empty means "search PATH"
func (l *PathLocator) SetPath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configured = strings.TrimSpace(path)
}

// Locate returns the transcoder path or model.ErrTranscoderMissing
func (l *PathLocator) Locate() (string, error) {
	l.mu.RLock()
	configured := l.configured
	l.mu.RUnlock()

	if configured != "" {
		return resolveConfigured(configured, runtime.GOOS)
	}

	path, err := l.lookPath(FFmpegCommand)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrTranscoderMissing, err)
	}
	return path, nil
}

// resolveConfigured accepts the ffmpeg binary itself or a directory holding it
func resolveConfigured(configured, goos string) (string, error) {
	info, err := os.Stat(configured)
	if err != nil {
		return "", fmt.Errorf("%w: %s", model.ErrTranscoderMissing, configured)
	}
	if !info.IsDir() {
		return configured, nil
	}

	candidate := filepath.Join(configured, executableName(goos))
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: no %s in %s", model.ErrTranscoderMissing, FFmpegCommand, configured)
}

func executableName(goos string) string {
	if goos == "windows" {
		return FFmpegCommand + ".exe"
	}
	return FFmpegCommand
}

// Version runs "ffmpeg -version" and returns the reported version string
func Version(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, VersionFlag)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to run ffmpeg: %w", err)
	}
	return parseVersion(output), nil
}

// parseVersion extracts the version token from the first output line
func parseVersion(output []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	if !scanner.Scan() {
		return UnknownVersion
	}
	line := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(line, VersionPrefix) {
		return UnknownVersion
	}
	fields := strings.Fields(strings.TrimPrefix(line, VersionPrefix))
	if len(fields) == 0 {
		return UnknownVersion
	}
	return fields[0]
}
