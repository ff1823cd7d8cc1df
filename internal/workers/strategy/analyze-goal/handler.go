// internal/workers/strategy/analyze-goal/handler.go
package analyzegoal

import (
	"context"
	"encoding/json"
	"fmt"

	"lumina-workers/internal/common/camunda"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/generator"
	"lumina-workers/internal/onboarding"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "analyze-goal"
)

type Handler struct {
	config    *Config
	generator generator.StrategyGenerator
	responder *camunda.Responder
	logger    logger.Logger
}

func NewHandler(config *Config, gen generator.StrategyGenerator, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		generator: gen,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := onboarding.ValidateGoalText(input.GoalDescription); err != nil {
		return nil, err
	}

	analysis, err := h.generator.AnalyzeGoal(ctx, input.GoalDescription)
	if err != nil {
		return nil, errors.NewGenerationFailedError("analyze", err)
	}

	h.logger.Info("goal analyzed", map[string]interface{}{
		"category":     analysis.Category,
		"refinedTitle": analysis.RefinedTitle,
	})

	return &Output{
		Category:     analysis.Category,
		CategoryName: analysis.Category.Label(),
		RefinedTitle: analysis.RefinedTitle,
	}, nil
}
