package catalog

import (
	"testing"

	"lumina-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Follower parsing
// ==========================

func TestParseFollowerCount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"42.5K", 42_500},
		{"2.1M", 2_100_000},
		{"1.2m", 1_200_000},
		{"850", 850},
		{"12,000", 12_000},
		{"1.2.3K", 1_200},
		{"", 0},
		{"not-a-number", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseFollowerCount(tt.input), 0.001)
		})
	}
}

// ==========================
// Tier classification
// ==========================

func TestClassifyTier_Boundaries(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Tier
	}{
		{"9999", models.TierNano},
		{"10000", models.TierMicro},
		{"99999", models.TierMicro},
		{"100000", models.TierMacro},
		{"999999", models.TierMacro},
		{"1000000", models.TierMega},
		{"155K", models.TierMacro},
		{"5.5M", models.TierMega},
		{"not-a-number", models.TierNano},
		{"???", models.TierNano},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTier(tt.input))
		})
	}
}

func TestClassifyTier_Monotonic(t *testing.T) {
	rank := map[models.Tier]int{models.TierNano: 0, models.TierMicro: 1, models.TierMacro: 2, models.TierMega: 3}
	inputs := []string{"0", "500", "9.9K", "10K", "42.5K", "99.9K", "100K", "680K", "1M", "5.5M"}

	prev := -1
	for _, in := range inputs {
		r := rank[ClassifyTier(in)]
		assert.GreaterOrEqual(t, r, prev, "tier decreased at %s", in)
		prev = r
	}
}

func TestTierLabelFromRange(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "Creator"},
		{"10k - 50k", "Micro-Influencer"},
		{"100k - 500k Followers", "Macro-Influencer"},
		{"200k+", "Macro-Influencer"},
		{"1M+", "Mega-Influencer"},
		{"500k - 1M", "Mega-Influencer"},
		{"1,000 - 5,000", "Nano-Influencer"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierLabelFromRange(tt.input))
		})
	}
}
