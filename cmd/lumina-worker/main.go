// cmd/lumina-worker/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lumina-workers/internal/catalog"
	"lumina-workers/internal/common/camunda"
	"lumina-workers/internal/common/config"
	"lumina-workers/internal/common/database"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/common/observability"
	"lumina-workers/internal/generator"
	"lumina-workers/internal/ranking"

	rank "lumina-workers/internal/workers/matching/rank-influencers"
	ag "lumina-workers/internal/workers/strategy/analyze-goal"
	gs "lumina-workers/internal/workers/strategy/generate-strategy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	log.Info("starting worker manager", map[string]interface{}{"environment": cfg.App.Environment})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observability.New(cfg.App.Name, log)

	// --- Catalog ---
	var pg *database.PostgresClient
	var rows catalog.RowQuerier
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres init failed", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.Ping(ctx); err != nil {
			zapLog.Fatal("postgres unreachable", zap.Error(err))
		}
		rows = pg
	}

	cat, err := catalog.Open(ctx, cfg.Catalog, rows)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	log.Info("catalog loaded", map[string]interface{}{"source": cfg.Catalog.Source, "records": cat.Len()})

	// --- Generator ---
	if cfg.APIs.Gemini.APIKey == "" {
		log.Warn("no gemini api key configured, strategies will use the fallback document", nil)
	}
	gen := generator.NewService(
		generator.NewGeminiClient(cfg.APIs.Gemini),
		cat,
		generator.Options{SuggestedCreators: cfg.Ranking.SuggestedCreators, Observability: obs},
		log,
	)

	// --- Zeebe ---
	zeebeClient, err := camunda.Connect(ctx, cfg.Camunda, camunda.DefaultRetryConfig, log)
	if err != nil {
		zapLog.Fatal("zeebe connection failed", zap.Error(err))
	}
	defer zeebeClient.Close()

	// --- Workers ---
	facets := ranking.NewFacetIndex()
	handlers := map[string]worker.JobHandler{
		rank.TaskType: rank.NewHandler(rank.LoadConfig(cfg), cat, facets, log).Handle,
		ag.TaskType:   ag.NewHandler(ag.LoadConfig(cfg), gen, log).Handle,
		gs.TaskType:   gs.NewHandler(gs.LoadConfig(cfg), gen, log).Handle,
	}

	var workers []worker.JobWorker
	for _, taskType := range []string{rank.TaskType, ag.TaskType, gs.TaskType} {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		w := camunda.StartWorker(zeebeClient, taskType, config.GetWorkerConfig(cfg, taskType), handlers[taskType], obs, log)
		workers = append(workers, w)
	}
	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	// --- Health & Metrics Server ---
	srv := newServer(cfg.Metrics.Address, zeebeClient, config.GetDuration(cfg.Camunda.RequestTimeout))
	go func() {
		log.Info("health/metrics server listening", map[string]interface{}{"address": cfg.Metrics.Address})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("health/metrics server failed", map[string]interface{}{"error": err})
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info("shutdown signal received, stopping workers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Close()
		w.AwaitClose()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error stopping health/metrics server", map[string]interface{}{"error": err})
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		log.Error("error flushing metrics", map[string]interface{}{"error": err})
	}

	log.Info("worker manager stopped", nil)
}

func newServer(addr string, client zbc.Client, timeout time.Duration) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy")
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := camunda.HealthCheck(r.Context(), client, timeout); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "zeebe unavailable")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
