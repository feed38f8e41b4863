package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/version"
)

// Response status values
const (
	StatusAlreadyCapturing = "already_capturing"
	StatusCapturing        = "capturing"
	StatusNotCapturing     = "not_capturing"
	StatusSaved            = "saved"
)

// StartRequest is the body of POST /api/capture/start
type StartRequest struct {
	PageURL string `json:"page_url" binding:"required"`
	TabID   *int   `json:"tab_id" binding:"required"`
}

// StartResponse is returned by POST /api/capture/start
type StartResponse struct {
	BaseURL   string `json:"base_url,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Status    string `json:"status"`
}

// StopResponse is returned by POST /api/capture/stop
type StopResponse struct {
	ArchiveName string `json:"archive_name,omitempty"`
	ArchivePath string `json:"archive_path,omitempty"`
	ArchiveSize int    `json:"archive_size,omitempty"`
	Error       string `json:"error,omitempty"`
	FailedCount int    `json:"failed_count"`
	FileCount   int    `json:"file_count"`
	Status      string `json:"status"`
}

// EventsResponse is returned by POST /api/events
type EventsResponse struct {
	Accepted  int `json:"accepted"`
	Delivered int `json:"delivered"`
}

// StatusResponse is returned by GET /api/status
type StatusResponse struct {
	BaseURL     string          `json:"base_url,omitempty"`
	FailedCount int             `json:"failed_count"`
	FileCount   int             `json:"file_count"`
	PendingURLs []string        `json:"pending_urls"`
	Persisted   *PersistedState `json:"persisted,omitempty"`
	SessionID   string          `json:"session_id,omitempty"`
	State       string          `json:"state"`
	TabID       int             `json:"tab_id,omitempty"`
}

// PersistedState is the stored capture state, as reported by GET /api/status
type PersistedState struct {
	Active    bool      `json:"active"`
	BaseURL   string    `json:"base_url,omitempty"`
	FileCount int       `json:"file_count"`
	SessionID string    `json:"session_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

type eventBatch struct {
	Events []domain.RequestEvent `json:"events"`
}

func (s *Server) startCapture(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	session, err := s.capture.Start(c.Request.Context(), req.PageURL, *req.TabID)
	if errors.Is(err, domain.ErrAlreadyCapturing) {
		c.JSON(http.StatusOK, StartResponse{Status: StatusAlreadyCapturing})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, StartResponse{
		BaseURL:   session.BaseURL,
		SessionID: session.ID,
		Status:    StatusCapturing,
	})
}

func (s *Server) stopCapture(c *gin.Context) {
	result, err := s.capture.Stop(c.Request.Context())
	if errors.Is(err, domain.ErrNotCapturing) {
		c.JSON(http.StatusOK, StopResponse{Status: StatusNotCapturing})
		return
	}

	resp := StopResponse{Status: StatusSaved}
	if result != nil {
		resp.ArchiveName = result.ArchiveName
		resp.ArchivePath = result.SavedTo
		resp.ArchiveSize = result.ArchiveSize
		resp.FailedCount = result.FailedCount
		resp.FileCount = result.FileCount
	}

	if err != nil {
		_ = c.Error(err)
		resp.Status = "error"
		resp.Error = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// postEvents accepts a single event, a {"events": [...]} batch or a bare array
func (s *Server) postEvents(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxEventBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read body: %v", err)})
		return
	}

	events, err := decodeEvents(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := 0
	for _, event := range events {
		delivered += s.hub.Publish(event)
	}

	logging.Logger.Debug("Request events received", "accepted", len(events), "delivered", delivered)
	c.JSON(http.StatusAccepted, EventsResponse{Accepted: len(events), Delivered: delivered})
}

func decodeEvents(body []byte) ([]domain.RequestEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty request body")
	}

	var events []domain.RequestEvent
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("invalid event array: %w", err)
		}
	default:
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, fmt.Errorf("invalid event: %w", err)
		}
		if raw, ok := probe["events"]; ok {
			if err := json.Unmarshal(raw, &events); err != nil {
				return nil, fmt.Errorf("invalid event batch: %w", err)
			}
			break
		}
		var event domain.RequestEvent
		if err := json.Unmarshal(trimmed, &event); err != nil {
			return nil, fmt.Errorf("invalid event: %w", err)
		}
		events = []domain.RequestEvent{event}
	}

	for i, event := range events {
		if event.URL == "" {
			return nil, fmt.Errorf("event %d: no url", i)
		}
	}
	return events, nil
}

func (s *Server) status(c *gin.Context) {
	status := s.capture.Status(c.Request.Context())

	resp := StatusResponse{
		BaseURL:     status.BaseURL,
		FailedCount: status.FailedCount,
		FileCount:   status.FileCount,
		PendingURLs: status.PendingURLs,
		SessionID:   status.SessionID,
		State:       string(status.State),
		TabID:       status.TabID,
	}
	if resp.PendingURLs == nil {
		resp.PendingURLs = []string{}
	}
	if p := status.Persisted; p != nil {
		resp.Persisted = &PersistedState{
			Active:    p.Active,
			BaseURL:   p.BaseURL,
			FileCount: p.FileCount,
			SessionID: p.SessionID,
			UpdatedAt: p.UpdatedAt,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Service: "sitegrab",
		Status:  "healthy",
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
		Version: version.Version,
	})
}
