package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/sitegrab/internal/logging"
)

// EventConnected is the first frame of every progress stream
const EventConnected = "connected"

// progressStream streams capture progress as server-sent events until the
// client disconnects or the broker closes
func (s *Server) progressStream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	events, cleanup := s.broker.Subscribe(c.Request.Context())
	defer cleanup()

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	state := s.capture.Status(c.Request.Context())
	if err := writeSSE(c.Writer, EventConnected, gin.H{"state": state.State}); err != nil {
		return
	}
	flusher.Flush()

	logging.Logger.Debug("Progress stream opened", "client_ip", c.ClientIP())

	heartbeat := time.NewTicker(s.config.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logging.Logger.Debug("Progress stream closed by client", "client_ip", c.ClientIP())
			return

		case event, ok := <-events:
			if !ok {
				logging.Logger.Debug("Progress stream closed by server", "client_ip", c.ClientIP())
				return
			}
			if err := writeSSE(c.Writer, event.Type, event.Data); err != nil {
				logging.Logger.Debug("Failed to write progress event", "error", err)
				return
			}
			flusher.Flush()

		case t := <-heartbeat.C:
			if _, err := fmt.Fprintf(c.Writer, ": heartbeat %d\n\n", t.Unix()); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload); err != nil {
		return fmt.Errorf("failed to write %s event: %w", eventType, err)
	}
	return nil
}
