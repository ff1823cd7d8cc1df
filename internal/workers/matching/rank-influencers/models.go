// internal/workers/matching/rank-influencers/models.go
package rankinfluencers

import (
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"
)

const (
	ModeStrategy = "strategy"
	ModeExplore  = "explore"
	ModeBrowse   = "browse"
)

type Input struct {
	BrandContext BrandContext     `json:"brandContext"`
	Platform     string           `json:"platform"`
	Goal         models.GoalType  `json:"goal"`
	Mode         string           `json:"mode"`
	Strict       *bool            `json:"strict,omitempty"` // strategy mode only, default true
	Criteria     ranking.Criteria `json:"criteria"`
	Premium      bool             `json:"premium"`
	Seed         *uint64          `json:"seed,omitempty"` // browse mode only
}

type BrandContext struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
}

type Output struct {
	Matches        []models.ScoredInfluencer `json:"matches"`
	HiddenCount    int                       `json:"hiddenCount"`
	UpgradeOffered bool                      `json:"upgradeOffered"`
	Locations      []string                  `json:"locations"`
	Niches         []string                  `json:"niches"`
}
