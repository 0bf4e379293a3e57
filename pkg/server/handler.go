package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aibabysense/landing/internal/page"
	"github.com/aibabysense/landing/pkg/render"
)

var _ page.Host = (*Session)(nil)

// newView returns a fresh view in its initial state.
func (s *Server) newView() *page.View {
	return page.NewView(*s.config.Site, page.Options{
		RotateInterval: s.config.RotateInterval,
		RevealMargin:   s.config.RevealMargin,
		Logger:         s.logger,
	})
}

// RenderPage writes the full document of a fresh view to w. With live set
// the document boots the thin client; otherwise it is a static page.
func (s *Server) RenderPage(ctx context.Context, w io.Writer, live bool) error {
	_, span := startRenderSpan(ctx, PagePath)
	start := time.Now()

	var client *render.ClientConfig
	if live {
		client = &render.ClientConfig{
			Script: ClientPath,
			Socket: SocketPath,
			Debug:  s.config.DevMode,
		}
	}
	err := s.renderer.RenderPage(w, s.newView().Document(client))

	s.metrics.pageRendered(err, time.Since(start))
	endSpan(span, err)
	return err
}

// handlePage serves the server-rendered landing page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.RenderPage(r.Context(), &buf, true); err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

// HandleWebSocket upgrades the request and starts a live view on it.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Reserve(); err != nil {
		s.logger.Warn("websocket refused", "error", err)
		s.metrics.sessionRejected()
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already answered with an HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err)
		s.metrics.websocketError("upgrade")
		return
	}

	session, err := s.sessions.Create(conn, remoteIP(r))
	if err != nil {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()),
			time.Now().Add(time.Second),
		)
		conn.Close()
		return
	}

	view := s.newView()
	if err := view.Mount(session); err != nil {
		session.logger.Error("mount failed", "error", err)
		session.Close()
		return
	}
	session.SendHello()
	// The event loop is not running yet, so the view can be read here.
	view.Sync()
	session.Start()
	session.logger.Info("session started")
}

// handleHealth reports liveness and the number of live views.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}{"ok", s.sessions.Count()})
}

// remoteIP returns the host part of r.RemoteAddr, which RealIP has already
// replaced with the forwarded client address when present.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
