package ranking

import (
	"strings"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/models"
)

// Any is the explicit "no constraint" value a filter UI sends.
const Any = "All"

// Criteria are AND-combined; an empty or "All" field is no constraint.
type Criteria struct {
	Search   string `json:"search,omitempty"`
	Platform string `json:"platform,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Location string `json:"location,omitempty"`
	Niche    string `json:"niche,omitempty"`
}

func unset(v string) bool {
	return v == "" || v == Any
}

// Matches reports whether inf satisfies every set criterion.
//
// Search is a case-insensitive substring of name or handle. Platform and tier
// compare exactly. Location is a case-sensitive substring. Niche is a
// case-insensitive substring of any tag.
func (c Criteria) Matches(inf models.Influencer) bool {
	if !unset(c.Search) {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(inf.Name), q) && !strings.Contains(strings.ToLower(inf.Handle), q) {
			return false
		}
	}
	if !unset(c.Platform) && inf.Platform != c.Platform {
		return false
	}
	if !unset(c.Tier) && string(catalog.ClassifyTier(inf.Followers)) != c.Tier {
		return false
	}
	if !unset(c.Location) && !strings.Contains(inf.Location, c.Location) {
		return false
	}
	if !unset(c.Niche) {
		q := strings.ToLower(c.Niche)
		found := false
		for _, tag := range inf.Niche {
			if strings.Contains(strings.ToLower(tag), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter keeps the entries matching c, preserving order.
func Filter(scored []models.ScoredInfluencer, c Criteria) []models.ScoredInfluencer {
	out := make([]models.ScoredInfluencer, 0, len(scored))
	for _, s := range scored {
		if c.Matches(s.Influencer) {
			out = append(out, s)
		}
	}
	return out
}
