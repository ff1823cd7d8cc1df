package generator

import (
	"fmt"

	"lumina-workers/internal/models"
)

func goalPrompt(text string) string {
	return fmt.Sprintf(`Analyze this user's marketing goal description: %q.
1. Categorize it into one of these exact IDs: 'awareness', 'launch', 'sales', 'ugc', 'event', 'community'.
2. Create a short, punchy "North Star" title (max 6 words) summarizing this goal professionally.

Respond with JSON only: {"recommendedGoal": "<id>", "refinedGoal": "<title>"}`, text)
}

func strategyPrompt(f models.FormData) string {
	website := f.WebsiteURL
	if website == "" {
		website = "N/A"
	}

	return fmt.Sprintf(`Act as a world-class Influencer Marketing Strategist.

Client Profile:
- Name: %s
- Industry: %s
- Location: %s
- Reach: %s
- Website: %s
- Description: %s
- Main Goal: %s
- Specific Objective: %s

Task 1: Analyze the Brand Identity. Infer the story, mission, core values (4 single words), and tone.
Task 2: Develop a Strategy. Choose the SINGLE best social platform: Instagram, YouTube or TikTok.
Task 3: Define the Creator Persona in at most 25 words.
Task 4: Give 3 distinct content ideas, each with a title and a description of at most 15 words.

Constraints:
- reasoning: at most 25 words
- goalReasoning: at most 15 words
- brand story: at most 2 sentences
- mission: 1 sentence

Respond with JSON only, shaped as:
{"brand": {"story": "", "mission": "", "values": [], "tone": ""},
 "strategy": {"platformName": "", "targetRange": "e.g. 10k - 50k Followers", "frequency": "e.g. 3x Posts per week",
  "reasoning": "", "contentIdeas": [{"title": "", "description": ""}], "northStar": "",
  "goalReasoning": "", "creatorPersona": ""}}`,
		f.BusinessName, f.Industry, f.Location, f.Reach, website, f.BusinessDescription, f.Goal, f.RefinedGoal)
}
