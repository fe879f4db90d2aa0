package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// DefaultMetricsAddr is the default address for the metrics server.
	DefaultMetricsAddr = ":9090"

	// DefaultMetricsReadTimeout is the default read timeout for the metrics server.
	DefaultMetricsReadTimeout = 10 * time.Second

	// DefaultMetricsWriteTimeout is the default write timeout for the metrics server.
	DefaultMetricsWriteTimeout = 10 * time.Second

	// DefaultMetricsIdleTimeout is the default idle timeout for the metrics server.
	DefaultMetricsIdleTimeout = 60 * time.Second
)

// Metrics holds the Prometheus counters for scheduled reminder runs.
type Metrics struct {
	// RunsTotal counts completed runs by status ("success" or "error").
	RunsTotal *prometheus.CounterVec
	// EventsMatched counts events that passed the keyword and weekend filters.
	EventsMatched prometheus.Counter
	// RemindersSent counts reminder emails that went out.
	RemindersSent prometheus.Counter
}

// NewMetrics creates and registers the run counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "snowreminder_runs_total",
			Help: "Completed reminder runs by status.",
		}, []string{"status"}),
		EventsMatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "snowreminder_events_matched_total",
			Help: "Events that passed the keyword and weekend filters.",
		}),
		RemindersSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "snowreminder_reminders_sent_total",
			Help: "Reminder emails sent.",
		}),
	}
}

// MetricsServerConfig holds configuration for the metrics server.
type MetricsServerConfig struct {
	// Addr is the address to bind the metrics server to (e.g., ":9090").
	Addr string

	// Registry is the Prometheus registry to expose on /metrics.
	Registry *prometheus.Registry

	// Health, when set, has its endpoints registered alongside /metrics.
	Health *HealthChecker
}

// MetricsServer serves Prometheus metrics and health endpoints on a
// dedicated port, isolated from any application traffic.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
	registry   *prometheus.Registry
	health     *HealthChecker
}

// NewMetricsServer creates a new metrics server with the given configuration.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.Addr == "" {
		config.Addr = DefaultMetricsAddr
	}
	if config.Registry == nil {
		return nil, fmt.Errorf("prometheus registry is required for metrics server")
	}

	return &MetricsServer{
		addr:     config.Addr,
		registry: config.Registry,
		health:   config.Health,
	}, nil
}

// Start starts the metrics server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *MetricsServer) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.health != nil {
		s.health.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultMetricsReadTimeout,
		WriteTimeout:      DefaultMetricsWriteTimeout,
		IdleTimeout:       DefaultMetricsIdleTimeout,
	}

	slog.Info("starting metrics server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down metrics server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address for the metrics server.
func (s *MetricsServer) Addr() string {
	return s.addr
}
