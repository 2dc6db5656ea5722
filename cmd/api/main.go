package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dilawarpro/mentorship-chat/internal/api/router"
	appconfig "github.com/dilawarpro/mentorship-chat/internal/config"
	"github.com/dilawarpro/mentorship-chat/internal/conversation"
	"github.com/dilawarpro/mentorship-chat/internal/observability/metrics"
	"github.com/dilawarpro/mentorship-chat/internal/webchat"
	"github.com/dilawarpro/mentorship-chat/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting mentorship-chat API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	convMetrics := metrics.NewConversationMetrics(registry)

	transcript := buildTranscriptStore(cfg, logger)

	engineOpts := conversation.Options{
		WhatsAppNumber:      cfg.WhatsAppNumber,
		ProgramLabel:        cfg.ProgramLabel,
		WebsiteURL:          cfg.WebsiteURL,
		TypingDelay:         cfg.TypingDelay,
		TrustSequenceDelay:  cfg.TrustSequenceDelay,
		TrustStepInterval:   cfg.TrustStepInterval,
		EnableTrustSequence: true,
	}

	webchatHandler := webchat.NewHandler(transcript, engineOpts, cfg.AutoOpenDelay, nil, logger, convMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		Webchat:            webchatHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// WebSocket connections are long-lived, so read/write timeouts stay off.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Let in-flight bot message chains finish before exit.
	webchatHandler.Drain()

	logger.Info("server stopped")
}

// buildTranscriptStore picks Redis when configured, otherwise an in-process
// store suitable for single-node deployments.
func buildTranscriptStore(cfg *appconfig.Config, logger *logging.Logger) webchat.TranscriptStore {
	if cfg.UseMemoryTranscript {
		logger.Info("using in-memory transcript store")
		return conversation.NewMemoryTranscriptStore(cfg.TranscriptMax)
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("redis unavailable, falling back to in-memory transcript store", "error", err, "addr", cfg.RedisAddr)
		return conversation.NewMemoryTranscriptStore(cfg.TranscriptMax)
	}

	logger.Info("using redis transcript store", "addr", cfg.RedisAddr)
	return conversation.NewTranscriptStore(client)
}
