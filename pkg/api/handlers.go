package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/pkg/events"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
)

// sseHeartbeat matches the WebSocket heartbeat cadence.
const sseHeartbeat = 30 * time.Second

// handleStream serves one project's event log: a one-shot JSON array by
// default, or a live SSE stream with ?live=1 (or Accept: text/event-stream).
// Both start after ?offset.
func (s *Server) handleStream(c *gin.Context) {
	project := c.Param("project")
	offset, err := parseInt64(c.Query("offset"), 0)
	if err != nil {
		respondError(c, services.NewValidationError("offset", "offset must be an integer"))
		return
	}

	live := c.Query("live") == "1" || c.Query("live") == "true" ||
		c.GetHeader("Accept") == "text/event-stream"
	if live {
		s.streamSSE(c, project, offset)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, services.NewValidationError("limit", "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	evts, err := s.store.Read(c.Request.Context(), project, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"project_key": project,
		"offset":      offset,
		"count":       len(evts),
		"events":      evts,
	})
}

// handleDefaultEvents serves a live SSE stream of the configured default
// project.
func (s *Server) handleDefaultEvents(c *gin.Context) {
	offset, err := parseInt64(c.Query("offset"), 0)
	if err != nil {
		respondError(c, services.NewValidationError("offset", "offset must be an integer"))
		return
	}
	s.streamSSE(c, s.cfg.DefaultProject, offset)
}

// streamSSE attaches an in-process subscriber and forwards frames as SSE
// messages, with heartbeats on the WebSocket cadence.
func (s *Server) streamSSE(c *gin.Context, project string, offset int64) {
	ch, cancel, err := s.manager.SubscribeLocal(c.Request.Context(), project, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	streamSubscribers.WithLabelValues("sse").Inc()
	defer streamSubscribers.WithLabelValues("sse").Dec()

	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			frame, _ := json.Marshal(gin.H{
				"type":      events.ServerHeartbeat,
				"timestamp": time.Now().UnixMilli(),
			})
			if !writeSSE(c, frame) {
				return
			}
		case payload, ok := <-ch:
			if !ok {
				// Dropped for backpressure; the client reconnects from its
				// last offset.
				return
			}
			if !writeSSE(c, payload) {
				return
			}
			eventsStreamed.WithLabelValues("sse").Inc()
		}
	}
}

// writeSSE writes one data: frame and flushes; false means the client went
// away.
func writeSSE(c *gin.Context, payload []byte) bool {
	if _, err := c.Writer.WriteString("data: " + string(payload) + "\n\n"); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}

// handleCells returns the cells projection in tree form for ?project (or
// the default project).
func (s *Server) handleCells(c *gin.Context) {
	project := c.Query("project")
	if project == "" {
		project = s.cfg.DefaultProject
	}
	tree, err := s.beads.Tree(c.Request.Context(), project)
	if err != nil {
		respondError(c, err)
		return
	}
	if tree == nil {
		tree = []*models.CellNode{}
	}
	c.JSON(http.StatusOK, models.CellsResponse{
		ProjectKey: project,
		Cells:      tree,
	})
}

// handleGetCursor returns an external reader's saved stream position.
func (s *Server) handleGetCursor(c *gin.Context) {
	cur, err := s.cursors.Get(c.Request.Context(), c.Param("stream"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cursorResponse(cur))
}

// handleSaveCursor upserts an external reader's stream position so it can
// resume after a restart.
func (s *Server) handleSaveCursor(c *gin.Context) {
	var req struct {
		Position   int64  `json:"position"`
		Checkpoint string `json:"checkpoint"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", "malformed JSON body"))
		return
	}
	cur, err := s.cursors.Save(c.Request.Context(), c.Param("stream"), req.Position, req.Checkpoint)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cursorResponse(cur))
}

func cursorResponse(cur *ent.Cursor) gin.H {
	return gin.H{
		"stream_name": cur.StreamName,
		"position":    cur.Position,
		"checkpoint":  cur.Checkpoint,
		"updated_at":  cur.UpdatedAt,
	}
}

func parseInt64(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.New("invalid integer")
	}
	return n, nil
}
