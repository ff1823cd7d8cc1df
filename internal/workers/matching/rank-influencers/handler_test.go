// internal/workers/matching/rank-influencers/handler_test.go
package rankinfluencers

import (
	"context"
	"testing"
	"time"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		TopMatches: 2,
		BrowseSeed: 7,
		Timeout:    3 * time.Second,
	}
}

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), catalog.Seed(), ranking.NewFacetIndex(), logger.NewTestLogger(t))
}

func createTestInput() *Input {
	return &Input{
		BrandContext: BrandContext{Industry: "Technology", Location: "New York, USA"},
		Platform:     models.PlatformYouTube,
		Goal:         models.GoalAwareness,
		Mode:         ModeStrategy,
	}
}

func ids(scored []models.ScoredInfluencer) []string {
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.ID
	}
	return out
}

func boolPtr(b bool) *bool     { return &b }
func seedPtr(s uint64) *uint64 { return &s }

// ==========================
// Strategy mode
// ==========================

func TestExecute_StrategyMode(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(in *Input)
		expectedIDs    []string
		expectedHidden int
		expectUpgrade  bool
	}{
		{
			name:           "free viewer sees the top matches",
			modify:         func(in *Input) {},
			expectedIDs:    []string{"4", "5"},
			expectedHidden: 1,
			expectUpgrade:  true,
		},
		{
			name:        "premium viewer sees everything",
			modify:      func(in *Input) { in.Premium = true },
			expectedIDs: []string{"4", "5", "12"},
		},
		{
			name:        "mode defaults to strategy",
			modify:      func(in *Input) { in.Mode = ""; in.Premium = true },
			expectedIDs: []string{"4", "5", "12"},
		},
		{
			name:           "non-strict scores the whole catalog",
			modify:         func(in *Input) { in.Strict = boolPtr(false) },
			expectedIDs:    []string{"4", "5"},
			expectedHidden: catalog.Seed().Len() - 2,
			expectUpgrade:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			input := createTestInput()
			tt.modify(input)

			output, err := h.execute(context.Background(), input)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedIDs, ids(output.Matches))
			assert.Equal(t, tt.expectedHidden, output.HiddenCount)
			assert.Equal(t, tt.expectUpgrade, output.UpgradeOffered)
			assert.Len(t, output.Locations, 6)
			assert.Len(t, output.Niches, 20)
		})
	}
}

func TestExecute_StrategyModeNeedsPlatform(t *testing.T) {
	h := createTestHandler(t)
	input := createTestInput()
	input.Platform = ""

	_, err := h.execute(context.Background(), input)

	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))
}

// ==========================
// Explore and browse modes
// ==========================

func TestExecute_ExploreFilters(t *testing.T) {
	h := createTestHandler(t)
	input := createTestInput()
	input.Mode = ModeExplore
	input.Criteria = ranking.Criteria{Platform: models.PlatformTikTok, Tier: ranking.Any}

	output, err := h.execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, output.Matches, 4)
	for i, m := range output.Matches {
		assert.Equal(t, models.PlatformTikTok, m.Platform)
		if i > 0 {
			assert.GreaterOrEqual(t, output.Matches[i-1].MatchScore, m.MatchScore)
		}
	}
	assert.Zero(t, output.HiddenCount)
	assert.False(t, output.UpgradeOffered)
}

func TestExecute_ExploreNoMatchesIsEmptyList(t *testing.T) {
	h := createTestHandler(t)
	input := createTestInput()
	input.Mode = ModeExplore
	input.Criteria = ranking.Criteria{Search: "nobody by this name"}

	output, err := h.execute(context.Background(), input)
	require.NoError(t, err)

	assert.NotNil(t, output.Matches)
	assert.Empty(t, output.Matches)
}

func TestExecute_BrowseIsSeeded(t *testing.T) {
	h := createTestHandler(t)
	input := &Input{Mode: ModeBrowse}

	first, err := h.execute(context.Background(), input)
	require.NoError(t, err)
	second, err := h.execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, ranking.RankForBrowsing(catalog.Seed().ListAll(), 7), first.Matches)

	input.Seed = seedPtr(99)
	third, err := h.execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, ranking.RankForBrowsing(catalog.Seed().ListAll(), 99), third.Matches)
	for _, m := range third.Matches {
		assert.GreaterOrEqual(t, m.MatchScore, 60)
		assert.Less(t, m.MatchScore, 90)
		assert.Empty(t, m.MatchDetails)
	}
}

func TestExecute_UnknownMode(t *testing.T) {
	h := createTestHandler(t)
	input := createTestInput()
	input.Mode = "shuffle"

	_, err := h.execute(context.Background(), input)

	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))
}

// ==========================
// Configuration
// ==========================

func TestLoadConfig(t *testing.T) {
	c := LoadConfig(nil)
	assert.Equal(t, ranking.DefaultTopMatches, c.TopMatches)

	c = LoadConfig(&config.Config{
		Ranking: config.RankingConfig{TopMatches: 5, BrowseSeed: 11},
		Workers: map[string]config.WorkerConfig{TaskType: {Enabled: true, Timeout: 2500}},
	})
	assert.Equal(t, 5, c.TopMatches)
	assert.Equal(t, uint64(11), c.BrowseSeed)
	assert.Equal(t, 2500*time.Millisecond, c.Timeout)
}
