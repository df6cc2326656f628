package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
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

// Directory names
const (
	DownloadsDirName      = "Downloads"
	AndroidDownloadsDir   = "/sdcard/Download"
	FallbackDownloadsDir  = "downloads"
	FyneAndroidBinaryName = "libdist.so"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath reports whether an executable is available; replaced in tests
var lookPath = exec.LookPath

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absPath)
	}

	return openFolderFor(runtime.GOOS, absPath)
}

func openFolderFor(goos, dirPath string) error {
	switch goos {
	case OSDarwin:
		return commandRunner(OpenCommand, dirPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, dirPath)
	case OSLinux:
		return openFolderLinux(dirPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openFolderLinux tries xdg-open first and then known file managers
func openFolderLinux(dirPath string) error {
	if err := commandRunner(XDGOpenCommand, dirPath); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return commandRunner(fm, dirPath)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if isAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DownloadsDirName), nil
}

// DefaultDownloadsDir returns the Downloads directory, or a relative fallback
// when the home directory cannot be resolved
func DefaultDownloadsDir() string {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		return FallbackDownloadsDir
	}
	return dir
}

// isAndroid detects a Fyne Android runtime
func isAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == FyneAndroidBinaryName
}
