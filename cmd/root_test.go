package cmd

import (
	"context"
	"testing"
)

func runWith(t *testing.T, args ...string) options {
	t.Helper()
	var got options
	cmd := newRootCmd(func(ctx context.Context, opts options) error {
		got = opts
		return nil
	})
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return got
}

func TestRootCmd_Defaults(t *testing.T) {
	opts := runWith(t)

	if opts.outputDir != "" || opts.ytdlpPath != "" || opts.ffmpeg != "" {
		t.Errorf("Expected empty paths by default, got %+v", opts)
	}
	if opts.install || opts.debug {
		t.Errorf("Expected boolean flags off by default, got %+v", opts)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	opts := runWith(t,
		"-o", "/tmp/out",
		"--ytdlp", "/opt/yt-dlp",
		"--ffmpeg", " /opt/ffmpeg ",
		"--install",
		"--debug",
	)

	if opts.outputDir != "/tmp/out" {
		t.Errorf("Expected output dir /tmp/out, got %q", opts.outputDir)
	}
	if opts.ytdlpPath != "/opt/yt-dlp" {
		t.Errorf("Expected yt-dlp path, got %q", opts.ytdlpPath)
	}
	if opts.ffmpeg != "/opt/ffmpeg" {
		t.Errorf("Expected trimmed ffmpeg path, got %q", opts.ffmpeg)
	}
	if !opts.install || !opts.debug {
		t.Errorf("Expected install and debug on, got %+v", opts)
	}
}

func TestRootCmd_Environment(t *testing.T) {
	t.Setenv("TUBEFETCH_OUTPUT_DIR", "/env/out")
	t.Setenv("TUBEFETCH_DEBUG", "true")

	opts := runWith(t)
	if opts.outputDir != "/env/out" {
		t.Errorf("Expected output dir from env, got %q", opts.outputDir)
	}
	if !opts.debug {
		t.Error("Expected debug from env")
	}

	// Flags win over the environment
	opts = runWith(t, "--output-dir", "/flag/out")
	if opts.outputDir != "/flag/out" {
		t.Errorf("Expected flag to override env, got %q", opts.outputDir)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(ctx context.Context, opts options) error { return nil })
	cmd.SetArgs([]string{"https://youtube.com/watch?v=abc"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for positional arguments")
	}
}
