package ranking

import "lumina-workers/internal/models"

// DefaultTopMatches is the number of matches shown without a subscription.
const DefaultTopMatches = 3

// Revealed is what a viewer may see of a ranked list.
type Revealed struct {
	Matches        []models.ScoredInfluencer `json:"matches"`
	HiddenCount    int                       `json:"hiddenCount"`
	UpgradeOffered bool                      `json:"upgradeOffered"`
}

// Reveal shows premium viewers the full list. Everyone else gets the first
// top entries and, when something is withheld, an upgrade offer.
func Reveal(ranked []models.ScoredInfluencer, premium bool, top int) Revealed {
	if premium {
		return Revealed{Matches: ranked}
	}
	if top < 0 {
		top = 0
	}
	if top >= len(ranked) {
		return Revealed{Matches: ranked}
	}
	return Revealed{
		Matches:        ranked[:top],
		HiddenCount:    len(ranked) - top,
		UpgradeOffered: true,
	}
}
