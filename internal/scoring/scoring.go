// Package scoring computes how well one influencer fits a brand's strategy.
package scoring

import (
	"strings"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/models"
)

const (
	BaseScore = 40
	MaxScore  = 99

	IndustryBonus = 30
	LocationBonus = 20
	PlatformBonus = 15
	IntentBonus   = 15
)

// Detail strings, in evaluation order.
const (
	DetailIndustry = "Brand Fit: Industry Match"
	DetailLocation = "Locality: Proximity Match"
	DetailPlatform = "Platform: Strategy Aligned"
	intentPrefix   = "Intent: "
)

// BrandContext is the part of the onboarding answers scoring looks at.
type BrandContext struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
}

// ContextFromForm extracts the brand context from onboarding answers.
func ContextFromForm(f models.FormData) BrandContext {
	return BrandContext{Industry: f.Industry, Location: f.Location}
}

// Score applies the additive rubric. The result is within [BaseScore, MaxScore]
// and details lists granted bonuses in evaluation order.
func Score(inf models.Influencer, brand BrandContext, platform string, goal models.GoalType) (int, []string) {
	score := BaseScore
	details := []string{}

	if IndustryMatch(inf.Niche, brand.Industry) {
		score += IndustryBonus
		details = append(details, DetailIndustry)
	}

	if LocationMatch(inf.Location, brand.Location) {
		score += LocationBonus
		details = append(details, DetailLocation)
	}

	if strings.EqualFold(inf.Platform, platform) {
		score += PlatformBonus
		details = append(details, DetailPlatform)
	}

	if label, ok := IntentMatch(catalog.ClassifyTier(inf.Followers), goal); ok {
		score += IntentBonus
		details = append(details, intentPrefix+label)
	}

	score += Variance(inf.ID)
	if score > MaxScore {
		score = MaxScore
	}
	return score, details
}

// IndustryMatch reports whether any niche tag contains, or is contained by,
// the industry (case-insensitive). "Tech" also matches "Technology". An empty
// industry matches nothing.
func IndustryMatch(niche []string, industry string) bool {
	if industry == "" {
		return false
	}
	ind := strings.ToLower(industry)
	for _, tag := range niche {
		if tag == "" {
			continue
		}
		t := strings.ToLower(tag)
		if strings.Contains(ind, t) || strings.Contains(t, ind) {
			return true
		}
		if industry == "Technology" && tag == "Tech" {
			return true
		}
	}
	return false
}

// LocationMatch splits the brand location on commas and looks for any
// fragment longer than two characters inside the influencer's location.
func LocationMatch(influencerLocation, brandLocation string) bool {
	target := strings.ToLower(influencerLocation)
	for _, part := range strings.Split(brandLocation, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if len(part) <= 2 {
			continue
		}
		if strings.Contains(target, part) {
			return true
		}
	}
	return false
}

// IntentMatch maps the goal to the tiers that serve it and returns the
// label used in the detail string.
func IntentMatch(tier models.Tier, goal models.GoalType) (string, bool) {
	switch goal {
	case models.GoalAwareness, models.GoalLaunch:
		return "Mass Reach", tier == models.TierMacro || tier == models.TierMega
	case models.GoalSales, models.GoalUGC:
		return "High Conversion", tier == models.TierNano || tier == models.TierMicro
	default:
		return "Community Engagement", tier == models.TierMicro || tier == models.TierMacro
	}
}

// Variance is (leading integer of id * 7) mod 5. Ids without a leading
// integer contribute nothing.
func Variance(id string) int {
	n, digits := 0, 0
	for _, r := range strings.TrimSpace(id) {
		if r < '0' || r > '9' {
			break
		}
		n = (n*10 + int(r-'0')) % 5
		digits++
	}
	if digits == 0 {
		return 0
	}
	return (n * 7) % 5
}
