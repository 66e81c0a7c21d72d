package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// DownloadsDirName is the conventional per-user downloads folder
const DownloadsDirName = "Downloads"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ValidateDirectory checks that path exists and is a directory
func ValidateDirectory(dirPath string) error {
	if strings.TrimSpace(dirPath) == "" {
		return fmt.Errorf("directory path is empty")
	}
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// OpenDirectory shows a folder in the system file manager
func OpenDirectory(dirPath string) error {
	if err := ValidateDirectory(dirPath); err != nil {
		return err
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := openDirectoryCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	err = openerResult(runtime.GOOS, exec.Command(name, args...).Run())
	if err == nil {
		return nil
	}
	if runtime.GOOS != OSLinux {
		return fmt.Errorf("failed to open %s: %w", absPath, err)
	}

	// xdg-open is not always wired up; fall back to a known file manager
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, absPath).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// openerResult filters the opener's exit error. explorer exits with status 1
// even when the window opened, so only a failed start counts on Windows.
func openerResult(goos string, err error) error {
	var exitErr *exec.ExitError
	if goos == OSWindows && errors.As(err, &exitErr) {
		return nil
	}
	return err
}

// openDirectoryCommand returns the command that opens dir on goos
func openDirectoryCommand(goos, dir string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{dir}, nil
	case OSWindows:
		return ExplorerCommand, []string{dir}, nil
	case OSLinux:
		return XDGOpenCommand, []string{dir}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
