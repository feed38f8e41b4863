package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renato0307/sitegrab/internal/adapters/eventsource"
	"github.com/renato0307/sitegrab/internal/adapters/progress"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/services"
)

// Server is the HTTP API the browser extension talks to: capture commands,
// observed request events and the progress stream
type Server struct {
	broker    *progress.Broker
	capture   *services.CaptureService
	config    Config
	gatherer  prometheus.Gatherer
	hub       *eventsource.Hub
	router    *gin.Engine
	startedAt time.Time
}

// New creates the server and registers its routes
func New(cfg Config, capture *services.CaptureService, hub *eventsource.Hub, broker *progress.Broker, gatherer prometheus.Gatherer) *Server {
	cfg.SetDefaults()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		broker:    broker,
		capture:   capture,
		config:    cfg,
		gatherer:  gatherer,
		hub:       hub,
		router:    gin.New(),
		startedAt: time.Now(),
	}

	// Recovery first to catch panics, then logging, then CORS
	s.router.Use(recoveryMiddleware())
	s.router.Use(loggerMiddleware())
	s.router.Use(corsMiddleware(cfg.AllowedOrigins))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := s.router.Group("/api")
	api.POST("/capture/start", s.startCapture)
	api.POST("/capture/stop", s.stopCapture)
	api.POST("/events", s.postEvents)
	api.GET("/status", s.status)
	api.GET("/progress", s.progressStream)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// No write timeout: progress streams stay open
	httpServer := &http.Server{
		Handler:     s.router,
		ReadTimeout: s.config.ReadTimeout,
		IdleTimeout: s.config.IdleTimeout,
	}

	logging.Logger.Info("Starting HTTP server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Logger.Info("Context cancelled, shutting down HTTP server")
	}

	// Progress streams never end on their own
	if s.broker != nil {
		s.broker.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logging.Logger.Info("HTTP server stopped gracefully")
	return <-errCh
}
