// Hive coordination server: append-only event log, file reservations,
// messaging, and live fan-out for multi-agent code work.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opencoord/hive/pkg/api"
	"github.com/opencoord/hive/pkg/cleanup"
	"github.com/opencoord/hive/pkg/config"
	"github.com/opencoord/hive/pkg/database"
	"github.com/opencoord/hive/pkg/events"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/services"
	"github.com/opencoord/hive/pkg/version"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store := logstore.New(dbClient.DB())
	beadService := services.NewBeadService(dbClient.Client, store, logger)
	cursorService := services.NewCursorService(dbClient.Client, logger)

	// Streaming: the manager fans committed events out to WS and SSE
	// subscribers; the listener feeds it over a dedicated LISTEN connection.
	connManager := events.NewConnectionManager(store, 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	retention := cleanup.NewService(dbClient.Client, store, 0, 0, logger)
	retention.Start(ctx)
	defer retention.Stop()

	server := api.NewServer(cfg, dbClient, store, connManager, beadService, cursorService, logger)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	slog.Info("Hive server starting",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"default_project", cfg.DefaultProject)
	if err := server.Run(runCtx); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
