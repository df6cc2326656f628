package download

import (
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

func TestNewYTDLPRunner(t *testing.T) {
	r := NewYTDLPRunner(true)

	if r.progressInterval != DefaultProgressInterval {
		t.Errorf("Expected interval %v, got %v", DefaultProgressInterval, r.progressInterval)
	}
	if !r.autoInstall {
		t.Error("Expected autoInstall to be true")
	}
}

func TestSetProgressInterval(t *testing.T) {
	r := NewYTDLPRunner(false)

	r.SetProgressInterval(time.Second)
	if r.progressInterval != time.Second {
		t.Errorf("Expected 1s, got %v", r.progressInterval)
	}

	r.SetProgressInterval(0)
	if r.progressInterval != DefaultProgressInterval {
		t.Errorf("Zero interval should reset to default, got %v", r.progressInterval)
	}
}

func TestReportFromUpdate(t *testing.T) {
	report := reportFromUpdate(ytdlp.ProgressUpdate{
		Status:          "downloading",
		DownloadedBytes: 50,
		TotalBytes:      200,
	})

	if report.Status != StatusDownloading {
		t.Errorf("Expected status %q, got %q", StatusDownloading, report.Status)
	}
	if report.PercentStr != "25.0%" {
		t.Errorf("Expected percent '25.0%%', got %q", report.PercentStr)
	}
	if report.DownloadedBytes != 50 || report.TotalBytes != 200 {
		t.Errorf("Unexpected byte counts: %+v", report)
	}

	report = reportFromUpdate(ytdlp.ProgressUpdate{Status: "downloading", DownloadedBytes: 10})
	if _, ok := ParsePercent(report.PercentStr); ok {
		t.Errorf("Unknown total should not parse, got %q", report.PercentStr)
	}
}

func TestEnsureInstalled_Disabled(t *testing.T) {
	r := NewYTDLPRunner(false)
	if err := r.ensureInstalled(t.Context()); err != nil {
		t.Errorf("Expected no error when auto install is disabled, got %v", err)
	}
}
