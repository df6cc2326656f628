package download

// Package download runs a single yt-dlp download attempt off the UI goroutine
// (via github.com/lrstanley/go-ytdlp). It maps quality tiers to format selectors,
// parses progress percentages and reports progress, completion and failure to
// the window as events on a channel.
