// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
	OutcomeFailed    = "failed"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumina_worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumina_worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lumina_worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	StrategyGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumina_strategy_generations_total",
			Help: "Strategy generations by outcome (generated, fallback, failed)",
		},
		[]string{"outcome"},
	)

	GoalAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumina_goal_analyses_total",
			Help: "Goal analyses by outcome (generated, fallback, failed)",
		},
		[]string{"outcome"},
	)

	RankRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lumina_rank_requests_total",
			Help: "Ranking requests by view mode",
		},
		[]string{"mode"},
	)

	RankDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lumina_rank_duration_seconds",
			Help:    "Time spent ranking the catalog",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05},
		},
		[]string{"mode"},
	)
)
