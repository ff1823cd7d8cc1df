// Package generator turns onboarding answers into a brand and platform
// strategy using a text model, falling back to fixed documents whenever the
// model cannot produce a usable answer.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/common/metrics"
	"lumina-workers/internal/common/observability"
	"lumina-workers/internal/common/validation"
	"lumina-workers/internal/models"
	"lumina-workers/internal/ranking"
	"lumina-workers/internal/scoring"
)

// GoalAnalysis is the result of classifying a free-text goal.
type GoalAnalysis struct {
	Category     models.GoalType `json:"category"`
	RefinedTitle string          `json:"refinedTitle"`
}

// StrategyGenerator is the port the session and workers depend on. Model
// failures never surface as errors; an error means the call itself could
// not run (for example the context was cancelled).
type StrategyGenerator interface {
	AnalyzeGoal(ctx context.Context, text string) (GoalAnalysis, error)
	GenerateStrategy(ctx context.Context, form models.FormData) (*models.DashboardData, error)
}

// TextModel produces a JSON text answer for a prompt.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Options struct {
	SuggestedCreators int
	Observability     *observability.Observability
}

// Service implements StrategyGenerator on top of a TextModel.
type Service struct {
	model   TextModel
	catalog *catalog.Catalog
	opts    Options
	logger  logger.Logger
}

func NewService(model TextModel, cat *catalog.Catalog, opts Options, log logger.Logger) *Service {
	if opts.SuggestedCreators <= 0 {
		opts.SuggestedCreators = ranking.DefaultSuggestedCreators
	}
	return &Service{
		model:   model,
		catalog: cat,
		opts:    opts,
		logger:  log.WithFields(map[string]interface{}{"component": "generator"}),
	}
}

type goalDocument struct {
	RecommendedGoal models.GoalType `json:"recommendedGoal"`
	RefinedGoal     string          `json:"refinedGoal"`
}

func (s *Service) AnalyzeGoal(ctx context.Context, text string) (GoalAnalysis, error) {
	start := time.Now()

	var doc goalDocument
	err := s.ask(ctx, goalPrompt(text), validation.GoalAnalysisSchema, &doc)
	s.record(ctx, "analyze_goal", start, err != nil)

	if err != nil {
		if ctx.Err() != nil {
			metrics.GoalAnalyses.WithLabelValues(metrics.OutcomeFailed).Inc()
			return GoalAnalysis{}, ctx.Err()
		}
		s.logger.Warn("goal analysis failed, using fallback", map[string]interface{}{"error": err})
		metrics.GoalAnalyses.WithLabelValues(metrics.OutcomeFallback).Inc()
		return FallbackGoal(), nil
	}

	metrics.GoalAnalyses.WithLabelValues(metrics.OutcomeGenerated).Inc()
	return GoalAnalysis{Category: doc.RecommendedGoal, RefinedTitle: doc.RefinedGoal}, nil
}

type strategyDocument struct {
	Brand    models.BrandProfile `json:"brand"`
	Strategy models.Strategy     `json:"strategy"`
}

func (s *Service) GenerateStrategy(ctx context.Context, form models.FormData) (*models.DashboardData, error) {
	start := time.Now()

	var doc strategyDocument
	err := s.ask(ctx, strategyPrompt(form), validation.StrategySchema, &doc)
	s.record(ctx, "generate_strategy", start, err != nil)

	if err != nil {
		if ctx.Err() != nil {
			metrics.StrategyGenerations.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, ctx.Err()
		}
		s.logger.Warn("strategy generation failed, using fallback", map[string]interface{}{
			"industry": form.Industry,
			"error":    err,
		})
		metrics.StrategyGenerations.WithLabelValues(metrics.OutcomeFallback).Inc()
		return FallbackDashboard(form, s.catalog, s.opts.SuggestedCreators), nil
	}

	if doc.Strategy.NorthStar == "" {
		doc.Strategy.NorthStar = form.RefinedGoal
	}

	metrics.StrategyGenerations.WithLabelValues(metrics.OutcomeGenerated).Inc()
	return &models.DashboardData{
		Brand:    doc.Brand,
		Strategy: doc.Strategy,
		Creators: s.creators(form, doc.Strategy.PlatformName),
	}, nil
}

func (s *Service) creators(form models.FormData, platform string) []models.ScoredInfluencer {
	return ranking.SuggestCreators(s.catalog.ListAll(), scoring.ContextFromForm(form), platform, form.Goal, s.opts.SuggestedCreators)
}

// ask runs the prompt, strips code fences, validates against schema and
// decodes into out.
func (s *Service) ask(ctx context.Context, prompt string, schema map[string]interface{}, out interface{}) error {
	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("model call: %w", err)
	}

	raw := []byte(StripCodeFences(text))
	res, err := validation.ValidateJSON(schema, raw)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("response failed schema validation: %s", res.Summary())
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (s *Service) record(ctx context.Context, op string, start time.Time, fellBack bool) {
	if s.opts.Observability != nil {
		s.opts.Observability.RecordGeneratorCall(ctx, op, time.Since(start), fellBack)
	}
}
