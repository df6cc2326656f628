package download

import (
	"context"
)

// StatusDownloading is the progress status reported while bytes are being fetched
const StatusDownloading = "downloading"

// ProgressReport mirrors the status dictionary yt-dlp hands to progress hooks
type ProgressReport struct {
	Status          string // "downloading", "finished", ...
	PercentStr      string // e.g. " 45.2%", may carry ANSI color codes
	DownloadedBytes int64
	TotalBytes      int64
}

// Runner performs one download of a single URL with the given options
type Runner interface {
	Run(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error
}

// RunnerFunc adapts an ordinary function to the Runner interface
type RunnerFunc func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error

// Run calls f(ctx, url, opts, onProgress)
func (f RunnerFunc) Run(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
	return f(ctx, url, opts, onProgress)
}
