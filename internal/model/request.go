package model

import (
	"errors"
	"strings"
)

// ErrEmptyURL is returned when a request is built without a URL
var ErrEmptyURL = errors.New("url is empty")

// DownloadRequest is a single download attempt captured from the form at click time
type DownloadRequest struct {
	URL         string
	Quality     Quality
	AudioOnly   bool
	Destination string // target directory
}

// NewDownloadRequest builds a request with a trimmed URL
func NewDownloadRequest(url string, quality Quality, audioOnly bool, destination string) DownloadRequest {
	if quality == "" {
		quality = QualityDefault
	}
	return DownloadRequest{
		URL:         strings.TrimSpace(url),
		Quality:     quality,
		AudioOnly:   audioOnly,
		Destination: destination,
	}
}

// Validate checks the request can be handed to a worker
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}

// Describe returns a compact one-line summary for logs
func (r DownloadRequest) Describe() string {
	mode := r.Quality.Label()
	if r.AudioOnly {
		mode = "audio"
	}
	return r.URL + " [" + mode + "] -> " + r.Destination
}
