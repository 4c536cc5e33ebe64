package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/bracket"
	"github.com/mauv0809/padel-cup/internal/config"
	"github.com/mauv0809/padel-cup/internal/generator"
	"github.com/mauv0809/padel-cup/internal/group"
	server "github.com/mauv0809/padel-cup/internal/http"
	"github.com/mauv0809/padel-cup/internal/match"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/notifier"
	"github.com/mauv0809/padel-cup/internal/notifier/slack"
	"github.com/mauv0809/padel-cup/internal/playtomic"
	"github.com/mauv0809/padel-cup/internal/processor"
	"github.com/mauv0809/padel-cup/internal/pubsub"
	"github.com/mauv0809/padel-cup/internal/storage"
	"github.com/mauv0809/padel-cup/internal/team"
	"github.com/mauv0809/padel-cup/internal/tournament"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	ctx := context.Background()
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %s", err)
	}
	codec, err := storage.NewCodec(cfg.Storage.Codec)
	if err != nil {
		log.Fatalf("Failed to create storage codec: %s", err)
	}
	runner := storage.NewRunner(store, codec, storage.WithFailureHook(func(key storage.Key, err error) {
		metricsSvc.IncStorageFailures(string(key))
	}))
	defer func() {
		log.Info("Closing storage")
		if err := runner.Close(); err != nil {
			log.Error("Failed to close storage", "error", err)
		}
	}()
	storageInitDuration := time.Since(startTime)
	log.Info("Storage initialization time recorded", "backend", cfg.Storage.Backend, "duration_ms", storageInitDuration.Milliseconds())

	tournaments := tournament.New(runner)
	stores := processor.Stores{
		Tournaments: tournaments,
		Teams:       team.New(runner, tournaments),
		Groups:      group.New(runner),
		Matches:     match.New(runner, tournaments),
		Brackets:    bracket.New(runner),
		Tx:          runner,
	}

	var genOpts []generator.Option
	if cfg.RejectRegeneration {
		genOpts = append(genOpts, generator.WithPolicy(generator.RejectRegeneration))
	}
	gen := generator.New(generator.Deps{
		Tournaments: stores.Tournaments,
		Teams:       stores.Teams,
		Groups:      stores.Groups,
		Matches:     stores.Matches,
		Brackets:    stores.Brackets,
		Tx:          runner,
	}, genOpts...)

	var notif processor.Notifier = notifier.LogNotifier{}
	if cfg.Slack.Token != "" {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("Slack is not configured, notifications are logged only")
	}

	var ps pubsub.PubSubClient
	if cfg.ProjectID != "" {
		ps, err = pubsub.New(ctx, cfg.ProjectID, "padel-")
		if err != nil {
			log.Fatalf("Failed to initialize Pub/Sub: %s", err)
		}
		defer ps.Close()
	} else {
		log.Info("Pub/Sub is not configured, events are handled in-process")
	}

	proc := processor.New(stores, gen, notif, metricsSvc, ps, playtomic.NewClient())

	if cfg.SeedSampleData {
		if _, err := tournament.SeedSampleData(ctx, tournaments); err != nil {
			log.Error("Failed to seed sample data", "error", err)
		}
	}

	s := server.NewServer(stores, proc, metricsSvc, metricsHandler, cfg, ps)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
