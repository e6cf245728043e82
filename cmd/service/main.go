// cmd/service/main.go
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

	"golang.org/x/sync/errgroup"

	"github-ai-assistant/internal/api"
	"github-ai-assistant/internal/assistant"
	"github-ai-assistant/internal/config"
	"github-ai-assistant/internal/github"
	"github-ai-assistant/internal/llm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully")

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	ghClient := github.NewClient(cfg.GithubToken, cfg.GithubTimeout, cfg.DateLayout(), logger)

	hosted, err := llm.NewGemini(ctx, cfg.GeminiProject, cfg.GeminiLocation, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create hosted model client: %w", err)
	}
	local, err := llm.NewOllama(cfg.OllamaHost, cfg.OllamaModel)
	if err != nil {
		return fmt.Errorf("failed to create local model client: %w", err)
	}

	factory := assistant.NewFactory(ghClient, hosted, local, logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(factory.Chat, logger),
	}

	// 5. Run the server until a shutdown signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received. Stopping HTTP server.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
