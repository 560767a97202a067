// Package api exposes the fan-out and projection read endpoints over HTTP:
// WebSocket and SSE streaming of the event log, the cells tree, health, and
// Prometheus metrics.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opencoord/hive/pkg/config"
	"github.com/opencoord/hive/pkg/database"
	"github.com/opencoord/hive/pkg/events"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/services"
)

// Server hosts the HTTP surface.
type Server struct {
	cfg     config.Config
	db      *database.Client
	store   *logstore.Store
	manager *events.ConnectionManager
	beads   *services.BeadService
	cursors *services.CursorService
	logger  *slog.Logger

	httpServer *http.Server
}

// NewServer wires the HTTP server over its collaborators.
func NewServer(cfg config.Config, db *database.Client, store *logstore.Store, manager *events.ConnectionManager, beads *services.BeadService, cursors *services.CursorService, logger *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		store:   store,
		manager: manager,
		beads:   beads,
		cursors: cursors,
		logger:  logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(corsMiddleware())

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", s.handleWebSocket)
	r.GET("/streams/:project", s.handleStream)
	r.GET("/events", s.handleDefaultEvents)
	r.GET("/cells", s.handleCells)
	r.GET("/cursors/:stream", s.handleGetCursor)
	r.PUT("/cursors/:stream", s.handleSaveCursor)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.HTTPPort),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "port", s.cfg.HTTPPort)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}

// handleHealth reports process and database health.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    dbHealth,
		"connections": s.manager.ActiveConnections(),
	})
}
