package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubCommands replaces the command hooks for the duration of a test
func stubCommands(t *testing.T, run func(name string, args ...string) error, available map[string]bool) *[]string {
	t.Helper()

	var calls []string
	origRun, origLook := commandRunner, lookPath
	commandRunner = func(name string, args ...string) error {
		calls = append(calls, name+" "+strings.Join(args, " "))
		return run(name, args...)
	}
	lookPath = func(file string) (string, error) {
		if available[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() {
		commandRunner, lookPath = origRun, origLook
	})
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if !isAndroid() && filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestDefaultDownloadsDir(t *testing.T) {
	if DefaultDownloadsDir() == "" {
		t.Error("DefaultDownloadsDir should never be empty")
	}
}

func TestOpenFolder_Validation(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "directory path is empty"},
		{"missing directory", filepath.Join(tempDir, "missing"), "directory does not exist"},
		{"file instead of directory", filePath, "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OpenFolder(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOpenFolderFor_Commands(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{OSDarwin, "open /data/dl"},
		{OSWindows, "explorer /data/dl"},
		{OSLinux, "xdg-open /data/dl"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			calls := stubCommands(t, func(string, ...string) error { return nil }, nil)

			if err := openFolderFor(tt.goos, "/data/dl"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(*calls) != 1 || (*calls)[0] != tt.expected {
				t.Errorf("expected call %q, got %v", tt.expected, *calls)
			}
		})
	}
}

func TestOpenFolderFor_Unsupported(t *testing.T) {
	stubCommands(t, func(string, ...string) error { return nil }, nil)

	err := openFolderFor("plan9", "/data/dl")
	if err == nil || !strings.Contains(err.Error(), "unsupported operating system") {
		t.Errorf("expected unsupported OS error, got %v", err)
	}
}

func TestOpenFolderLinux_FallsBackToFileManager(t *testing.T) {
	calls := stubCommands(t, func(name string, args ...string) error {
		if name == XDGOpenCommand {
			return errors.New("xdg-open missing")
		}
		return nil
	}, map[string]bool{"thunar": true})

	if err := openFolderLinux("/data/dl"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"xdg-open /data/dl", "thunar /data/dl"}
	if len(*calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, *calls)
	}
	for i := range expected {
		if (*calls)[i] != expected[i] {
			t.Errorf("call %d: expected %q, got %q", i, expected[i], (*calls)[i])
		}
	}
}

func TestOpenFolderLinux_NoFileManager(t *testing.T) {
	stubCommands(t, func(string, ...string) error { return errors.New("fail") }, nil)

	err := openFolderLinux("/data/dl")
	if err == nil || err.Error() != "no suitable file manager found" {
		t.Errorf("expected no file manager error, got %v", err)
	}
}
