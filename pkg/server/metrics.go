package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "landing").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "landing",
	}
}

// Metrics holds the server's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	activeSessions   prometheus.Gauge
	sessionsTotal    prometheus.Counter
	sessionsRejected prometheus.Counter
	sessionDuration  prometheus.Histogram
	eventsTotal      *prometheus.CounterVec
	eventsDropped    prometheus.Counter
	dispatchDrops    prometheus.Counter
	eventDuration    *prometheus.HistogramVec
	handlerPanics    prometheus.Counter
	patchesSent      *prometheus.CounterVec
	pageRenders      *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	wsErrors         *prometheus.CounterVec
}

// NewMetrics registers the server's collectors on reg.
//
// Metrics collected:
//   - landing_active_sessions: Gauge of live views
//   - landing_sessions_total: Counter of sessions created
//   - landing_sessions_rejected_total: Counter of upgrades refused by the session limit
//   - landing_session_duration_seconds: Histogram of session lifetimes
//   - landing_events_total: Counter of UI events by type
//   - landing_events_dropped_total: Counter of events dropped on a full queue
//   - landing_dispatch_dropped_total: Counter of loop callbacks (rotator ticks) dropped on a full queue
//   - landing_event_duration_seconds: Histogram of event handling time by type
//   - landing_handler_panics_total: Counter of recovered panics on the event loop
//   - landing_patches_sent_total: Counter of patches sent by op
//   - landing_page_renders_total: Counter of page renders by status
//   - landing_page_render_duration_seconds: Histogram of page render time
//   - landing_websocket_errors_total: Counter of WebSocket errors by type
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(reg)

	return &Metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_sessions",
			Help:        "Number of live page views",
			ConstLabels: config.ConstLabels,
		}),

		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "sessions_total",
			Help:        "Total number of sessions created",
			ConstLabels: config.ConstLabels,
		}),

		sessionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "sessions_rejected_total",
			Help:        "Total number of WebSocket upgrades refused by the session limit",
			ConstLabels: config.ConstLabels,
		}),

		sessionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "session_duration_seconds",
			Help:        "Lifetime of closed sessions in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 10, 30, 60, 300, 900, 3600},
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_total",
			Help:        "Total number of UI events handled",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_dropped_total",
			Help:        "Total number of UI events dropped because the queue was full",
			ConstLabels: config.ConstLabels,
		}),

		dispatchDrops: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "dispatch_dropped_total",
			Help:        "Total number of event loop callbacks dropped because the queue was full",
			ConstLabels: config.ConstLabels,
		}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "event_duration_seconds",
			Help:        "UI event handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"type"}),

		handlerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "handler_panics_total",
			Help:        "Total number of panics recovered on session event loops",
			ConstLabels: config.ConstLabels,
		}),

		patchesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "patches_sent_total",
			Help:        "Total number of patches sent to clients",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		pageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "page_renders_total",
			Help:        "Total number of full page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "page_render_duration_seconds",
			Help:        "Full page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.DefBuckets,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

func (m *Metrics) sessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
	m.sessionsTotal.Inc()
}

func (m *Metrics) sessionClosed(lifetime time.Duration) {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
	m.sessionDuration.Observe(lifetime.Seconds())
}

func (m *Metrics) sessionRejected() {
	if m != nil {
		m.sessionsRejected.Inc()
	}
}

func (m *Metrics) eventHandled(eventType string, d time.Duration) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(eventType).Inc()
	m.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

func (m *Metrics) eventDropped() {
	if m != nil {
		m.eventsDropped.Inc()
	}
}

func (m *Metrics) dispatchDropped() {
	if m != nil {
		m.dispatchDrops.Inc()
	}
}

func (m *Metrics) handlerPanic() {
	if m != nil {
		m.handlerPanics.Inc()
	}
}

func (m *Metrics) patchSent(op string) {
	if m != nil {
		m.patchesSent.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) pageRendered(err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.pageRenders.WithLabelValues(status).Inc()
	m.renderDuration.Observe(d.Seconds())
}

func (m *Metrics) websocketError(errorType string) {
	if m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}
