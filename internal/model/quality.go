package model

import "strings"

// Quality is a user-facing target resolution bucket
type Quality string

const (
	QualityDefault Quality = "default"
	Quality1080p   Quality = "1080p"
	Quality720p    Quality = "720p"
	Quality480p    Quality = "480p"
	Quality360p    Quality = "360p"
	Quality240p    Quality = "240p"
	Quality144p    Quality = "144p"
)

// DefaultQualityLabel is shown in place of "default" in the quality selector
const DefaultQualityLabel = "Best Quality"

var qualities = []Quality{
	QualityDefault,
	Quality1080p,
	Quality720p,
	Quality480p,
	Quality360p,
	Quality240p,
	Quality144p,
}

var qualityHeights = map[Quality]int{
	Quality1080p: 1080,
	Quality720p:  720,
	Quality480p:  480,
	Quality360p:  360,
	Quality240p:  240,
	Quality144p:  144,
}

// Qualities returns all quality tiers in selector order (best first)
func Qualities() []Quality {
	out := make([]Quality, len(qualities))
	copy(out, qualities)
	return out
}

// QualityAt maps a selector index to a tier. Out of range indexes select the default tier.
func QualityAt(index int) Quality {
	if index < 0 || index >= len(qualities) {
		return QualityDefault
	}
	return qualities[index]
}

// ParseQuality converts a stored value back into a tier
func ParseQuality(value string) (Quality, bool) {
	v := Quality(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return QualityDefault, false
	}
	for _, q := range qualities {
		if q == v {
			return q, true
		}
	}
	return QualityDefault, false
}

// Index returns the selector position of the tier
func (q Quality) Index() int {
	for i, v := range qualities {
		if v == q {
			return i
		}
	}
	return 0
}

// Height returns the target height in pixels, 0 for the default tier
func (q Quality) Height() int {
	return qualityHeights[q]
}

// Label returns the display label
func (q Quality) Label() string {
	if q == QualityDefault || q == "" {
		return DefaultQualityLabel
	}
	return string(q)
}

// PrefersSmallest is true for the low tiers, which pick the smallest stream under the cap
func (q Quality) PrefersSmallest() bool {
	return q == Quality144p || q == Quality240p
}

// String returns the string representation of Quality
func (q Quality) String() string {
	return string(q)
}
