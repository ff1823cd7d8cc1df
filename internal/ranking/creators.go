package ranking

import (
	"strings"

	"lumina-workers/internal/models"
	"lumina-workers/internal/scoring"
)

// DefaultSuggestedCreators is the size of a dashboard's creator list.
const DefaultSuggestedCreators = 4

const fallbackCandidates = 3

var industryNiches = map[string][]string{
	"Technology":           {"Gadgets", "Coding", "Gaming", "AI Tools", "Desk Setups"},
	"Fashion & Beauty":     {"Streetwear", "Luxury", "Clean Beauty", "Sustainable Fashion", "GRWM"},
	"Food & Beverage":      {"Plant Based", "Mixology", "Fine Dining", "Home Cooking", "Meal Prep"},
	"Health & Wellness":    {"Yoga", "Mental Health", "Fitness", "Biohacking", "Nutrition"},
	"Travel & Hospitality": {"Luxury Travel", "Backpacking", "Van Life", "Hidden Gems", "Solo Travel"},
	"Finance":              {"Crypto", "Personal Finance", "Investing", "Real Estate"},
	"Education":            {"Study Hacks", "Career Advice", "Languages", "Science"},
	"E-commerce":           {"Unboxing", "Hauls", "Reviews", "Lifestyle"},
	"Other":                {"Lifestyle", "Comedy", "DIY", "Art"},
}

// SuggestedNiches lists niche ideas for an industry, falling back to the
// "Other" row.
func SuggestedNiches(industry string) []string {
	n, ok := industryNiches[industry]
	if !ok {
		n = industryNiches["Other"]
	}
	return append([]string(nil), n...)
}

// SuggestCreators picks the creators attached to a freshly generated
// dashboard. Candidates share the platform loosely or match the industry;
// when none qualify the first three records are used. Candidates are scored
// with the rubric and the best limit are returned.
func SuggestCreators(all []models.Influencer, brand scoring.BrandContext, platform string, goal models.GoalType, limit int) []models.ScoredInfluencer {
	var candidates []models.Influencer
	for _, inf := range all {
		if loosePlatformMatch(inf.Platform, platform) || looseIndustryMatch(inf.Niche, brand.Industry) {
			candidates = append(candidates, inf)
		}
	}
	if len(candidates) == 0 {
		candidates = all[:min(fallbackCandidates, len(all))]
	}

	ranked := RankForStrategy(candidates, brand, platform, goal, false)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func loosePlatformMatch(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func looseIndustryMatch(niche []string, industry string) bool {
	if industry == "Other" {
		return len(niche) > 0
	}
	ind := strings.ToLower(industry)
	for _, n := range niche {
		n = strings.ToLower(n)
		if strings.Contains(ind, n) || strings.Contains(n, ind) {
			return true
		}
	}
	return false
}
