package download

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/yt-quick/internal/model"
)

// OutputFilenameTemplate names files after the video title with the native extension
const OutputFilenameTemplate = "%(title)s.%(ext)s"

// AudioOnlySelector picks the best audio-only stream in its own container
const AudioOnlySelector = "bestaudio"

// Pick is the end of the quality ladder a rule prefers
type Pick string

const (
	PickBest  Pick = "best"
	PickWorst Pick = "worst"
)

// FormatRule describes which stream variant to request from yt-dlp
type FormatRule struct {
	Pick      Pick
	MaxHeight int // 0 means no height cap
	AudioOnly bool
}

// RuleFor returns the format rule for a quality tier.
// Low tiers take the smallest stream under the cap, the rest the largest;
// both fall back to the same end of the ladder when nothing fits under the cap.
func RuleFor(quality model.Quality, audioOnly bool) FormatRule {
	if audioOnly {
		return FormatRule{Pick: PickBest, AudioOnly: true}
	}

	pick := PickBest
	if quality.PrefersSmallest() {
		pick = PickWorst
	}
	return FormatRule{Pick: pick, MaxHeight: quality.Height()}
}

// String renders the rule in yt-dlp format selector syntax
func (r FormatRule) String() string {
	if r.AudioOnly {
		return AudioOnlySelector
	}
	if r.MaxHeight <= 0 {
		return string(r.Pick)
	}
	return fmt.Sprintf("%s[height<=%d]/%s", r.Pick, r.MaxHeight, r.Pick)
}

// Options is the configuration handed to the Runner
type Options struct {
	Format         string
	OutputTemplate string
}

// BuildOptions derives runner options from a request
func BuildOptions(req model.DownloadRequest) Options {
	return Options{
		Format:         RuleFor(req.Quality, req.AudioOnly).String(),
		OutputTemplate: filepath.Join(req.Destination, OutputFilenameTemplate),
	}
}
