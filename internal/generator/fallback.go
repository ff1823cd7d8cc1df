package generator

import (
	"fmt"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"
	"lumina-workers/internal/scoring"
)

const (
	fallbackGoalTitle = "Maximize Brand Potential"
	fallbackPlatform  = models.PlatformInstagram
)

// FallbackGoal is returned when goal analysis fails.
func FallbackGoal() GoalAnalysis {
	return GoalAnalysis{Category: models.GoalAwareness, RefinedTitle: fallbackGoalTitle}
}

// FallbackDashboard builds the fixed document used when strategy generation
// fails. Creators still come from the catalog.
func FallbackDashboard(form models.FormData, cat *catalog.Catalog, creators int) *models.DashboardData {
	return &models.DashboardData{
		Brand: models.BrandProfile{
			Story:   fmt.Sprintf("We simplify %s for the modern world.", form.Industry),
			Mission: "To empower users through innovation.",
			Values:  []string{"Quality", "Trust", "Speed", "Design"},
			Tone:    "Professional yet accessible.",
		},
		Strategy: models.Strategy{
			PlatformName: fallbackPlatform,
			TargetRange:  "10k - 50k",
			Frequency:    "3 posts / week",
			Reasoning:    "High engagement rates for this industry.",
			ContentIdeas: []models.ContentIdea{
				{Title: "Unboxing Experience", Description: "Highlighting the premium packaging and first impressions."},
				{Title: "How-To Tutorial", Description: "Demonstrating the key value proposition in 60 seconds."},
				{Title: "User Testimonial", Description: "Authentic stories from real users solving real problems."},
			},
			NorthStar:      form.RefinedGoal,
			GoalReasoning:  "Building foundational trust.",
			CreatorPersona: "Authentic storytellers who value aesthetics and have a high-trust relationship with their audience.",
		},
		Creators: ranking.SuggestCreators(cat.ListAll(), scoring.ContextFromForm(form), fallbackPlatform, form.Goal, creators),
	}
}
