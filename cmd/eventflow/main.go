// Command eventflow runs the Slack event ingestion server: an HTTP webhook
// ingress publishing to the configured queue backend, a consumer dispatching
// queued events, and a Prometheus metrics endpoint.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/relaymq/eventflow/backend"
	_ "github.com/relaymq/eventflow/backend/backends"
	"github.com/relaymq/eventflow/config"
	"github.com/relaymq/eventflow/consumer"
	"github.com/relaymq/eventflow/event"
	"github.com/relaymq/eventflow/handler"
	"github.com/relaymq/eventflow/logging"
	"github.com/relaymq/eventflow/webhook"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting eventflow", zap.Stringer("config", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue, err := backend.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build queue backend", zap.Error(err))
		return err
	}

	registry := handler.NewRegistry(handler.WithRegistryLogger(logger))
	registry.All(func(ctx context.Context, ev event.Event) error {
		logger.Debug("event received",
			zap.String("type", ev.Type()),
			zap.String("subtype", ev.Subtype()))
		return nil
	})

	dispatcher := handler.NewTracedHandler(registry, nil)

	metrics := consumer.NewMetrics(prometheus.DefaultRegisterer)
	c := consumer.New(queue,
		consumer.WithGroup(cfg.ConsumerGroup),
		consumer.WithLogger(logger),
		consumer.WithMetrics(metrics),
	)

	var verifier *webhook.SignatureVerifier
	if cfg.SigningSecret != "" {
		verifier = webhook.NewSignatureVerifier(cfg.SigningSecret)
	} else {
		logger.Warn("SLACK_SIGNING_SECRET is not set; webhook signature checks disabled")
	}
	ingress := webhook.New(queue, cfg.EventsTopic, verifier, logger)

	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: ingress}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return c.Run(groupCtx, dispatcher.HandleEvent)
	})

	group.Go(func() error {
		logger.Info("webhook server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

		group.Go(func() error {
			logger.Info("metrics server listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("webhook server shutdown failed", zap.Error(err))
		}
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", zap.Error(err))
			}
		}
		if err := c.Shutdown(shutdownCtx); err != nil {
			logger.Error("consumer shutdown failed", zap.Error(err))
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("eventflow terminated", zap.Error(err))
		return err
	}

	logger.Info("eventflow stopped")
	return nil
}
