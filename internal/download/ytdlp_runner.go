package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// DefaultProgressInterval is how often yt-dlp progress is reported
const DefaultProgressInterval = 250 * time.Millisecond

// YTDLPRunner downloads through the yt-dlp executable
type YTDLPRunner struct {
	progressInterval time.Duration
	autoInstall      bool

	installOnce sync.Once
	installErr  error
}

// NewYTDLPRunner creates a runner. With autoInstall the yt-dlp binary is
// resolved (and fetched if missing) before the first download.
func NewYTDLPRunner(autoInstall bool) *YTDLPRunner {
	return &YTDLPRunner{
		progressInterval: DefaultProgressInterval,
		autoInstall:      autoInstall,
	}
}

// SetProgressInterval sets the progress reporting frequency
func (r *YTDLPRunner) SetProgressInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	r.progressInterval = interval
}

// Run downloads url once with the given options
func (r *YTDLPRunner) Run(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
	if err := r.ensureInstalled(ctx); err != nil {
		return err
	}

	dl := ytdlp.New().
		NoPlaylist().
		Format(opts.Format).
		Output(opts.OutputTemplate)

	if onProgress != nil {
		dl.ProgressFunc(r.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(reportFromUpdate(update))
		})
	}

	if _, err := dl.Run(ctx, url); err != nil {
		return err
	}
	return nil
}

func (r *YTDLPRunner) ensureInstalled(ctx context.Context) error {
	if !r.autoInstall {
		return nil
	}
	r.installOnce.Do(func() {
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			r.installErr = fmt.Errorf("failed to install yt-dlp: %w", err)
		}
	})
	return r.installErr
}

// reportFromUpdate converts a go-ytdlp progress update into a hook-style report
func reportFromUpdate(update ytdlp.ProgressUpdate) ProgressReport {
	downloaded := int64(update.DownloadedBytes)
	total := int64(update.TotalBytes)
	return ProgressReport{
		Status:          string(update.Status),
		PercentStr:      FormatPercent(downloaded, total),
		DownloadedBytes: downloaded,
		TotalBytes:      total,
	}
}
