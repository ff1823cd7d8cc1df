// internal/workers/matching/rank-influencers/config.go
package rankinfluencers

import (
	"time"

	"lumina-workers/internal/common/config"
	"lumina-workers/internal/ranking"
)

type Config struct {
	TopMatches int
	BrowseSeed uint64
	Timeout    time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		TopMatches: ranking.DefaultTopMatches,
		Timeout:    10 * time.Second,
	}
	if cfg == nil {
		return c
	}
	if cfg.Ranking.TopMatches > 0 {
		c.TopMatches = cfg.Ranking.TopMatches
	}
	c.BrowseSeed = cfg.Ranking.BrowseSeed
	if w := config.GetWorkerConfig(cfg, TaskType); w.Timeout > 0 {
		c.Timeout = config.GetDuration(w.Timeout)
	}
	return c
}
