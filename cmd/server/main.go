// Command server starts the internship recommender HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	ai "github.com/fairyhunter13/internship-recommender/internal/adapter/ai"
	"github.com/fairyhunter13/internship-recommender/internal/adapter/catalog"
	httpserver "github.com/fairyhunter13/internship-recommender/internal/adapter/httpserver"
	"github.com/fairyhunter13/internship-recommender/internal/adapter/observability"
	"github.com/fairyhunter13/internship-recommender/internal/app"
	"github.com/fairyhunter13/internship-recommender/internal/config"
	"github.com/fairyhunter13/internship-recommender/internal/usecase"
)

func main() {
	// Best-effort .env for local development; real deployments use the
	// process environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Catalog and default profile are fatal at startup: the service must
	// not serve requests with no catalog.
	postings, err := catalog.LoadPostings(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", slog.Any("error", err))
		os.Exit(1)
	}
	profileSrc := catalog.NewProfileFile(cfg.ProfilePath)
	if _, err := profileSrc.Load(); err != nil {
		slog.Error("default profile load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("catalog loaded", slog.Int("postings", len(postings)))

	synonyms, err := usecase.LoadSynonyms(cfg.SynonymsPath)
	if err != nil {
		slog.Error("synonym table load failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Absent provider credentials are a valid configuration: the affected
	// stages degrade instead of failing.
	if !cfg.EmbeddingsEnabled() {
		slog.Warn("embedding provider not configured; semantic rerank will degrade")
	}
	if !cfg.ChatEnabled() {
		slog.Warn("generative-model provider not configured; explanations will be templated")
	}
	aicl := ai.New(cfg)

	reco := usecase.NewRecommendService(postings, synonyms, aicl, cfg.RecCacheSize)
	srv := httpserver.NewServer(cfg, reco, profileSrc)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
