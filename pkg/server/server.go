package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/pkg/assets"
	"github.com/aibabysense/landing/pkg/render"
)

// ShutdownReason is sent to live clients when the server stops.
const ShutdownReason = "server shutdown"

// Server is the HTTP/WebSocket server for the landing page.
type Server struct {
	config   *ServerConfig
	sessions *SessionManager
	metrics  *Metrics
	renderer *render.Renderer
	upgrader websocket.Upgrader
	router   chi.Router

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server. Unset configuration fields take their defaults.
func New(config *ServerConfig) *Server {
	config = config.withDefaults()
	logger := config.Logger.With("component", "server")
	metrics := NewMetrics(config.Registry,
		WithNamespace(config.MetricsNamespace),
		WithConstLabels(config.MetricsLabels),
	)

	s := &Server{
		config:   config,
		sessions: NewSessionManager(config.SessionConfig, config.Clock, config.MaxSessions, metrics, config.Logger),
		metrics:  metrics,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.DevMode, Indent: "  "}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.checkOrigin(),
		},
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// routes builds the chi router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get(PagePath, s.handlePage)
	r.Head(PagePath, s.handlePage)
	r.Get(SocketPath, s.HandleWebSocket)
	r.HandleFunc(ClientPath, s.serveThinClient)
	r.HandleFunc(StylesheetPath, s.serveStylesheet)
	r.Get(HealthPath, s.handleHealth)

	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}

	if src := s.config.Assets; src != nil {
		static := assets.NewHandler(src, assets.HandlerConfig{
			Prefix: StaticPrefix,
			Cache:  s.config.AssetCache,
			Logger: s.logger,
		})
		root := assets.NewHandler(src, assets.HandlerConfig{
			Prefix: "/",
			Cache:  s.config.AssetCache,
			Logger: s.logger,
		})
		r.Handle(StaticPrefix+"*", static)
		r.Handle("/logo/*", root)
		r.Handle(content.PreviewPath, root)
	}

	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every live view, then stops the HTTP server. It gives up
// after the configured ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	// Hijacked WebSocket connections are invisible to http.Server.Shutdown.
	if err := s.sessions.Shutdown(ctx, ShutdownReason); err != nil {
		s.logger.Error("session shutdown error", "error", err)
		return err
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Config returns the effective server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
