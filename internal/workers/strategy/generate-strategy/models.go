// internal/workers/strategy/generate-strategy/models.go
package generatestrategy

import "lumina-workers/internal/models"

type Input struct {
	FormData models.FormData `json:"formData"`
}

type Output struct {
	Dashboard *models.DashboardData `json:"dashboard"`
	// TierLabel names the creator tier the strategy's target range points at.
	TierLabel string `json:"tierLabel"`
}
