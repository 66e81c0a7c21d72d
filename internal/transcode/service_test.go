package transcode

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/tubefetch/internal/model"
)

func TestAudioMP3(t *testing.T) {
	d := AudioMP3()

	if d.Codec != "mp3" {
		t.Errorf("Expected codec mp3, got %s", d.Codec)
	}
	if d.Quality != "192K" {
		t.Errorf("Expected quality 192K, got %s", d.Quality)
	}

	// Each call hands out an independent value
	d.Codec = "opus"
	if AudioMP3().Codec != "mp3" {
		t.Error("AudioMP3 should not share state between calls")
	}
}

func TestLocate_ConfiguredPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to create fake binary: %v", err)
	}

	path, err := NewLocator(bin).Locate()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != bin {
		t.Errorf("Expected %s, got %s", bin, path)
	}
}

func TestLocate_ConfiguredPathMissing(t *testing.T) {
	_, err := NewLocator(filepath.Join(t.TempDir(), "nope")).Locate()
	if !errors.Is(err, model.ErrTranscoderMissing) {
		t.Errorf("Expected ErrTranscoderMissing, got %v", err)
	}
}

func TestLocate_ConfiguredPathIsEmptyDirectory(t *testing.T) {
	_, err := NewLocator(t.TempDir()).Locate()
	if !errors.Is(err, model.ErrTranscoderMissing) {
		t.Errorf("Expected ErrTranscoderMissing for an empty directory, got %v", err)
	}
}

func TestResolveConfigured_Directory(t *testing.T) {
	tests := []struct {
		name string
		goos string
		file string
	}{
		{name: "unix binary", goos: "linux", file: "ffmpeg"},
		{name: "windows binary", goos: "windows", file: "ffmpeg.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			bin := filepath.Join(dir, tt.file)
			if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
				t.Fatalf("Failed to create fake binary: %v", err)
			}

			path, err := resolveConfigured(dir, tt.goos)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if path != bin {
				t.Errorf("Expected %s, got %s", bin, path)
			}
		})
	}
}

func TestResolveConfigured_DirectoryWithSubdirNamedFFmpeg(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "ffmpeg"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	_, err := resolveConfigured(dir, "linux")
	if !errors.Is(err, model.ErrTranscoderMissing) {
		t.Errorf("Expected ErrTranscoderMissing, got %v", err)
	}
}

func TestLocate_SearchPath(t *testing.T) {
	tests := []struct {
		name    string
		look    func(string) (string, error)
		want    string
		wantErr bool
	}{
		{
			name: "found on PATH",
			look: func(string) (string, error) { return "/usr/bin/ffmpeg", nil },
			want: "/usr/bin/ffmpeg",
		},
		{
			name:    "not on PATH",
			look:    func(string) (string, error) { return "", errors.New("executable file not found") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocator("")
			l.lookPath = tt.look

			got, err := l.Locate()
			if tt.wantErr {
				if !errors.Is(err, model.ErrTranscoderMissing) {
					t.Errorf("Expected ErrTranscoderMissing, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"ffmpeg version 6.1.1-3ubuntu5 Copyright (c) 2000-2023\nbuilt with gcc", "6.1.1-3ubuntu5"},
		{"ffmpeg version n7.0 Copyright", "n7.0"},
		{"something else", UnknownVersion},
		{"", UnknownVersion},
	}

	for _, test := range tests {
		got := parseVersion([]byte(test.output))
		if got != test.expected {
			t.Errorf("parseVersion(%q) = %s, expected %s", test.output, got, test.expected)
		}
	}
}

func TestLocator_SetPath(t *testing.T) {
	l := NewLocator("/does/not/exist/ffmpeg")
	l.lookPath = func(string) (string, error) { return "/usr/bin/ffmpeg", nil }

	if _, err := l.Locate(); !errors.Is(err, model.ErrTranscoderMissing) {
		t.Errorf("Expected ErrTranscoderMissing for a missing file, got %v", err)
	}

	l.SetPath("  ")
	got, err := l.Locate()
	if err != nil {
		t.Fatalf("Expected PATH lookup after clearing, got %v", err)
	}
	if got != "/usr/bin/ffmpeg" {
		t.Errorf("Expected /usr/bin/ffmpeg, got %s", got)
	}
}
