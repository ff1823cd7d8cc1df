// internal/workers/strategy/analyze-goal/models.go
package analyzegoal

import "lumina-workers/internal/models"

type Input struct {
	GoalDescription string `json:"goalDescription"`
}

type Output struct {
	Category     models.GoalType `json:"category"`
	CategoryName string          `json:"categoryName"`
	RefinedTitle string          `json:"refinedTitle"`
}
