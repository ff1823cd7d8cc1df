// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/common/metrics"
	"lumina-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// StartWorker opens a job worker for taskType and records duration metrics
// around every invocation of handler.
func StartWorker(
	client zbc.Client,
	taskType string,
	wcfg config.WorkerConfig,
	handler worker.JobHandler,
	obs *observability.Observability,
	log logger.Logger,
) worker.JobWorker {
	instrumented := func(jc worker.JobClient, job entities.Job) {
		start := time.Now()
		handler(jc, job)
		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		if obs != nil {
			obs.RecordJob(context.Background(), taskType, "handled", elapsed)
		}
	}

	w := client.NewJobWorker().
		JobType(taskType).
		Handler(instrumented).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Name(taskType).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout":       wcfg.Timeout,
	})
	return w
}

// Responder sends the completion or failure command for a job.
type Responder struct {
	taskType string
	logger   logger.Logger
	errors   *errors.ErrorHandler
}

func NewResponder(taskType string, log logger.Logger) *Responder {
	return &Responder{
		taskType: taskType,
		logger:   log,
		errors:   errors.NewErrorHandler(log),
	}
}

// Complete sends output as the job's result variables.
func (r *Responder) Complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		r.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		r.Fail(ctx, client, job, err)
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
	r.logger.Info("job completed", map[string]interface{}{"jobKey": job.Key})
}

// Fail fails the job with retries or throws a BPMN error depending on the
// error's code.
func (r *Responder) Fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := errors.Normalize(err).Code
	metrics.WorkerJobsFailed.WithLabelValues(r.taskType, string(code)).Inc()
	r.errors.HandleJobError(ctx, client, job, err)
}
