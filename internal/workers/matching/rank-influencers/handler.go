// internal/workers/matching/rank-influencers/handler.go
package rankinfluencers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/camunda"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/common/metrics"
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"
	"lumina-workers/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "rank-influencers"
)

type Handler struct {
	config    *Config
	catalog   *catalog.Catalog
	facets    *ranking.FacetIndex
	responder *camunda.Responder
	logger    logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, facets *ranking.FacetIndex, log logger.Logger) *Handler {
	if facets == nil {
		facets = ranking.NewFacetIndex()
	}
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		catalog:   cat,
		facets:    facets,
		responder: camunda.NewResponder(TaskType, l),
		logger:    l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.responder.Fail(ctx, client, job, errors.NewValidationError("variables", fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.responder.Fail(ctx, client, job, err)
		return
	}

	h.responder.Complete(ctx, client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	mode := input.Mode
	if mode == "" {
		mode = ModeStrategy
	}

	start := time.Now()
	all := h.catalog.ListAll()
	brand := scoring.BrandContext{Industry: input.BrandContext.Industry, Location: input.BrandContext.Location}

	var revealed ranking.Revealed
	switch mode {
	case ModeStrategy:
		if input.Platform == "" {
			return nil, errors.NewValidationError("platform", "strategy mode needs the strategy platform")
		}
		strict := input.Strict == nil || *input.Strict
		ranked := ranking.RankForStrategy(all, brand, input.Platform, input.Goal, strict)
		revealed = ranking.Reveal(ranked, input.Premium, h.config.TopMatches)
	case ModeExplore:
		ranked := ranking.RankForStrategy(all, brand, input.Platform, input.Goal, false)
		revealed = ranking.Revealed{Matches: ranking.Filter(ranked, input.Criteria)}
	case ModeBrowse:
		seed := h.config.BrowseSeed
		if input.Seed != nil {
			seed = *input.Seed
		}
		revealed = ranking.Revealed{Matches: ranking.Filter(ranking.RankForBrowsing(all, seed), input.Criteria)}
	default:
		return nil, errors.NewValidationError("mode", fmt.Sprintf("unknown mode %q", input.Mode))
	}

	facets := h.facets.For(h.catalog)
	matches := revealed.Matches
	if matches == nil {
		matches = []models.ScoredInfluencer{}
	}

	metrics.RankRequests.WithLabelValues(mode).Inc()
	metrics.RankDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	h.logger.Info("ranking completed", map[string]interface{}{
		"mode":        mode,
		"resultCount": len(matches),
		"hiddenCount": revealed.HiddenCount,
	})

	return &Output{
		Matches:        matches,
		HiddenCount:    revealed.HiddenCount,
		UpgradeOffered: revealed.UpgradeOffered,
		Locations:      facets.Locations,
		Niches:         facets.Niches,
	}, nil
}
