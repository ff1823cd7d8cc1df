package catalog

import (
	"strconv"
	"strings"

	"lumina-workers/internal/models"
)

// ParseFollowerCount turns "42.5K" or "2.1M" into a count. Everything except
// digits and '.' is dropped before parsing; a string without digits is 0.
func ParseFollowerCount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	n := parseFloatPrefix(b.String())
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "M"):
		return n * 1_000_000
	case strings.Contains(upper, "K"):
		return n * 1_000
	}
	return n
}

// parseFloatPrefix reads the longest leading decimal number, so "1.2.3"
// parses as 1.2.
func parseFloatPrefix(s string) float64 {
	end, dot, digits := 0, false, false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else {
			digits = true
		}
		end++
	}
	if !digits {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// ClassifyTier buckets a follower magnitude string.
func ClassifyTier(followers string) models.Tier {
	n := ParseFollowerCount(followers)
	switch {
	case n < 10_000:
		return models.TierNano
	case n < 100_000:
		return models.TierMicro
	case n < 1_000_000:
		return models.TierMacro
	}
	return models.TierMega
}

// TierLabelFromRange names the creator tier a strategy's target follower
// range ("10k - 50k") points at.
func TierLabelFromRange(targetRange string) string {
	if targetRange == "" {
		return "Creator"
	}
	lower := strings.ToLower(targetRange)
	hasK := strings.Contains(lower, "k")
	hasM := strings.Contains(lower, "m")

	switch {
	case hasK && !hasM:
		if strings.Contains(targetRange, "100k") || strings.Contains(targetRange, "200k") {
			return "Macro-Influencer"
		}
		return "Micro-Influencer"
	case hasM:
		return "Mega-Influencer"
	}
	return "Nano-Influencer"
}
