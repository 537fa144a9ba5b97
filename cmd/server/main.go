package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrivero/cyberbomb/internal/api"
	"github.com/mrivero/cyberbomb/internal/config"
	"github.com/mrivero/cyberbomb/internal/db"
	"github.com/mrivero/cyberbomb/internal/game"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/services"
	"github.com/mrivero/cyberbomb/internal/session"
	"github.com/mrivero/cyberbomb/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("CyberBomb Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("ruleset=%s", cfg.Ruleset)
	log.Debug("levels_path=%s", cfg.LevelsPath)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("archive_worker_count=%d", cfg.ArchiveWorkerCount)
	log.Debug("archive_queue_size=%d", cfg.ArchiveQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	// Load the level table
	levels := game.DefaultLevels()
	if cfg.LevelsPath != "" {
		levels, err = game.LoadLevels(cfg.LevelsPath)
		if err != nil {
			log.Error("failed to load levels from %s: %v", cfg.LevelsPath, err)
			os.Exit(1)
		}
		log.Info("loaded %d levels from %s", len(levels), cfg.LevelsPath)
	}

	engine := game.New(cfg.GameParams(), levels)
	store := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	archivePool := worker.NewPool(cfg.ArchiveWorkerCount, cfg.ArchiveQueueSize)

	gameService := services.NewGameService(store, engine, database, archivePool, cfg.Ruleset)
	resultService := services.NewResultService(database)

	srv := &api.Server{
		GameService:   gameService,
		ResultService: resultService,
		Templates:     tmpl,
	}

	ctx, cancel := context.WithCancel(context.Background())
	archivePool.Start(ctx)
	store.StartJanitor(ctx, 5*time.Minute)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping background workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping archive pool")
	archivePool.Stop()

	log.Info("===========================================")
	log.Info("CyberBomb Server Stopped")
	log.Info("===========================================")
}
