package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/bot"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/config"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/database"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/handle"
	server "github.com/cuet-dev-corpse/khelile-ayyun/internal/http"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/pubsub"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	handleStore := handle.NewStore(db)
	duelStore := duel.NewStore(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	cfClient := codeforces.NewClient(cfg.Codeforces.BaseURL)
	registrar := handle.NewRegistrar(handleStore, cfClient)

	var events pubsub.Publisher
	if cfg.ProjectID != "" {
		events = pubsub.New(cfg.ProjectID)
	}

	b, err := bot.New(cfg.Discord.Token, registrar, duelStore, metricsSvc, events)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %s", err)
	}
	if err := b.Start(); err != nil {
		log.Fatalf("Failed to start bot: %s", err)
	}
	defer func() {
		log.Info("Closing Discord session")
		if err := b.Stop(); err != nil {
			log.Error("Failed to close Discord session", "error", err)
		}
	}()

	s := server.NewServer(duelStore, metricsSvc, metricsHandler, cfg)

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

	// Start the ops server in a goroutine
	go func() {
		log.Info("Ops server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
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

	log.Info("Bot process shutting down")
}
