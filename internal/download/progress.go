package download

import (
	"math"
	"strconv"
	"strings"

	"github.com/acarl005/stripansi"
)

// Progress bounds
const (
	MinPercent = 0
	MaxPercent = 100
)

// ParsePercent converts a yt-dlp percent string such as " 45.2%" into an
// integer in [0, 100]. ok is false when the string carries no number.
func ParsePercent(s string) (percent int, ok bool) {
	clean := strings.TrimSpace(stripansi.Strip(s))
	clean = strings.TrimSpace(strings.ReplaceAll(clean, "%", ""))
	if clean == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return clampPercent(int(f)), true
}

// FormatPercent renders a byte ratio the way yt-dlp fills _percent_str
func FormatPercent(downloaded, total int64) string {
	if total <= 0 {
		return "N/A%"
	}
	return strconv.FormatFloat(float64(downloaded)/float64(total)*100, 'f', 1, 64) + "%"
}

func clampPercent(p int) int {
	if p < MinPercent {
		return MinPercent
	}
	if p > MaxPercent {
		return MaxPercent
	}
	return p
}
