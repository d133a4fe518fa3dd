package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bbsimage/appfree/app/api"
	"github.com/bbsimage/appfree/app/cfg"
	"github.com/bbsimage/appfree/app/config"
	"github.com/bbsimage/appfree/app/database"
	"github.com/bbsimage/appfree/app/feed"
	"github.com/bbsimage/appfree/app/fetcher"
	"github.com/bbsimage/appfree/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting AppFree server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	rules, err := config.NewLoader(appCfg.RulesFile).Run()
	if err != nil {
		slog.Error("Failed to load rules", "error", err)
		os.Exit(1)
	}

	itemRepo := database.NewItemRepository(db)
	pipeline := feed.NewPipeline(rules)
	renderer := feed.NewRenderer()
	cache := feed.NewResultCache()
	source := fetcher.NewFetcher(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	scheduler := tasks.NewScheduler(source, pipeline, renderer, itemRepo, cache)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "feed_url", appCfg.FeedURL, "refresh_interval", appCfg.RefreshInterval)

	handler := api.NewHandler(cache, itemRepo, renderer, scheduler)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
