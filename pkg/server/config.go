package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/pkg/assets"
	"github.com/aibabysense/landing/pkg/ui"
)

// Routes served by the server.
const (
	PagePath       = "/"
	SocketPath     = "/_landing/ws"
	ClientPath     = "/_landing/client.js"
	StylesheetPath = "/_landing/landing.css"
	StaticPrefix   = "/static/"
	HealthPath     = "/healthz"
)

// SessionConfig holds configuration for individual sessions.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a message from the client.
	// Client pongs answer heartbeat pings, so it must exceed
	// HeartbeatInterval.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 64KB.
	MaxMessageSize int64

	// MaxEventQueue is the size of the event, dispatch and outbox buffers.
	// Default: 256.
	MaxEventQueue int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxEventQueue:     256,
	}
}

// Clone returns a copy of the SessionConfig.
func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (c *SessionConfig) withDefaults() *SessionConfig {
	d := DefaultSessionConfig()
	if c == nil {
		return d
	}
	out := c.Clone()
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.HeartbeatInterval <= 0 {
		out.HeartbeatInterval = d.HeartbeatInterval
	}
	if out.MaxMessageSize <= 0 {
		out.MaxMessageSize = d.MaxMessageSize
	}
	if out.MaxEventQueue <= 0 {
		out.MaxEventQueue = d.MaxEventQueue
	}
	return out
}

// ServerConfig holds configuration for the HTTP/WebSocket server.
type ServerConfig struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:3000").
	// Default: "localhost:8080".
	Address string

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 15 seconds.
	ShutdownTimeout time.Duration

	// MaxSessions is the maximum number of concurrent live views.
	// 0 means no limit.
	MaxSessions int

	// AllowedOrigins lists the origins allowed to open a live view. When
	// empty, only same-origin upgrades are accepted.
	AllowedOrigins []string

	// DevMode disables caching of the thin client and stylesheet and turns
	// on client debug logging.
	DevMode bool

	// SessionConfig is the configuration for individual sessions.
	// Default: DefaultSessionConfig().
	SessionConfig *SessionConfig

	// Site is the content rendered on the page.
	// Default: content.Default().
	Site *content.Site

	// RotateInterval is the testimonial rotation period.
	// Default: 4 seconds.
	RotateInterval time.Duration

	// RevealMargin is the viewport inset used by the reveal predicate.
	// Default: 100.
	RevealMargin float64

	// Clock drives the rotator of every session.
	// Default: ui.SystemClock.
	Clock ui.Clock

	// Assets serves the page images and everything under /static/.
	// When nil those routes answer 404.
	Assets assets.Source

	// AssetCache is the cache policy for assets.
	// Default: assets.CacheProduction, or assets.CacheNone in DevMode.
	AssetCache assets.CachePolicy

	// MetricsPath exposes the Prometheus registry over HTTP. Empty disables
	// the endpoint; collectors are still registered.
	MetricsPath string

	// MetricsNamespace prefixes every collector name.
	// Default: "landing".
	MetricsNamespace string

	// MetricsLabels are constant labels attached to every collector.
	MetricsLabels map[string]string

	// Registry receives the server's collectors and backs MetricsPath.
	// Default: a fresh prometheus.Registry.
	Registry *prometheus.Registry

	// Logger is the base logger.
	// Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:8080",
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   15 * time.Second,
		SessionConfig:     DefaultSessionConfig(),
		RotateInterval:    ui.RotateInterval,
		RevealMargin:      ui.RevealMargin,
		Clock:             ui.SystemClock,
		MetricsPath:       "/metrics",
		MetricsNamespace:  "landing",
	}
}

// withDefaults fills every unset field.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	if c == nil {
		c = d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ReadHeaderTimeout <= 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	out.SessionConfig = out.SessionConfig.withDefaults()
	if out.Site == nil {
		site := content.Default()
		out.Site = &site
	}
	if out.RotateInterval <= 0 {
		out.RotateInterval = d.RotateInterval
	}
	if out.RevealMargin <= 0 {
		out.RevealMargin = d.RevealMargin
	}
	if out.Clock == nil {
		out.Clock = d.Clock
	}
	if out.AssetCache == "" {
		out.AssetCache = assets.CacheProduction
		if out.DevMode {
			out.AssetCache = assets.CacheNone
		}
	}
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = d.MetricsNamespace
	}
	if out.Registry == nil {
		out.Registry = prometheus.NewRegistry()
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}

// checkOrigin returns the upgrader's origin policy. A nil func keeps the
// websocket package's same-origin check.
func (c *ServerConfig) checkOrigin() func(r *http.Request) bool {
	if len(c.AllowedOrigins) == 0 {
		return nil
	}
	allowed := make(map[string]struct{}, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		allowed[normalizeOrigin(o)] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[normalizeOrigin(origin)]
		return ok
	}
}

func normalizeOrigin(origin string) string {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimRight(origin, "/"))
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
