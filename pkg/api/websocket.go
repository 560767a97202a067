package api

import (
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// handleWebSocket upgrades and hands the connection to the manager, which
// blocks for the connection's lifetime.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// The read surface is open cross-origin, same as the REST endpoints.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	streamSubscribers.WithLabelValues("ws").Inc()
	defer streamSubscribers.WithLabelValues("ws").Dec()

	s.manager.HandleConnection(c.Request.Context(), conn)
}
