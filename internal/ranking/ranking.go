// Package ranking scores, orders, filters and gates catalog records for the
// strategy, explore and browse views.
package ranking

import (
	"math/rand/v2"
	"sort"
	"strings"

	"lumina-workers/internal/models"
	"lumina-workers/internal/scoring"
)

const (
	browseMin  = 60
	browseSpan = 30
)

// RankForStrategy scores every record against the brand and sorts by
// descending score, ties kept in catalog order. When strict is set only
// records on platform are considered. Same input, same output.
func RankForStrategy(all []models.Influencer, brand scoring.BrandContext, platform string, goal models.GoalType, strict bool) []models.ScoredInfluencer {
	scored := make([]models.ScoredInfluencer, 0, len(all))
	for _, inf := range all {
		if strict && !strings.EqualFold(inf.Platform, platform) {
			continue
		}
		score, details := scoring.Score(inf, brand, platform, goal)
		scored = append(scored, models.ScoredInfluencer{
			Influencer:   inf,
			MatchScore:   score,
			MatchDetails: details,
		})
	}
	sortByScore(scored)
	return scored
}

// RankForBrowsing assigns each record a score in [60, 89] drawn from a PCG
// source seeded with seed, independent of any brand. No details are set.
func RankForBrowsing(all []models.Influencer, seed uint64) []models.ScoredInfluencer {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	scored := make([]models.ScoredInfluencer, len(all))
	for i, inf := range all {
		scored[i] = models.ScoredInfluencer{
			Influencer:   inf,
			MatchScore:   browseMin + r.IntN(browseSpan),
			MatchDetails: []string{},
		}
	}
	sortByScore(scored)
	return scored
}

func sortByScore(s []models.ScoredInfluencer) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].MatchScore > s[j].MatchScore
	})
}
