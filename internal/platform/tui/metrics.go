package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of a studio process.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sshActive     prometheus.Gauge
	sshTotal      prometheus.Counter
	playSessions  *prometheus.CounterVec
	sessionScores *prometheus.HistogramVec
	blocksPlaced  prometheus.Counter
	announcements *prometheus.CounterVec
	dropped       prometheus.Counter
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sshActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "studio",
			Name:      "ssh_sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		sshTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "ssh_sessions_total",
			Help:      "SSH sessions accepted since start.",
		}),
		playSessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "play_sessions_total",
			Help:      "Finished play sessions by variant and result.",
		}, []string{"variant", "result"}),
		sessionScores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "studio",
			Name:      "session_score",
			Help:      "Score at the end of a play session.",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250},
		}, []string{"variant"}),
		blocksPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "blocks_placed_total",
			Help:      "Blocks painted in edit mode.",
		}),
		announcements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "announcements_total",
			Help:      "Status announcements by category.",
		}, []string{"category"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "events_dropped_total",
			Help:      "Events dropped because the delivery queue was full.",
		}),
	}

	m.registry.MustRegister(
		m.sshActive,
		m.sshTotal,
		m.playSessions,
		m.sessionScores,
		m.blocksPlaced,
		m.announcements,
		m.dropped,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs the /metrics endpoint until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr, "path", "/metrics")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (m *Metrics) sshConnected() {
	if m == nil {
		return
	}
	m.sshActive.Inc()
	m.sshTotal.Inc()
}

func (m *Metrics) sshDisconnected() {
	if m == nil {
		return
	}
	m.sshActive.Dec()
}

func (m *Metrics) sessionEnded(variant string, score int, gameOver bool) {
	if m == nil {
		return
	}
	result := "finished"
	if gameOver {
		result = "game_over"
	}
	m.playSessions.WithLabelValues(variant, result).Inc()
	m.sessionScores.WithLabelValues(variant).Observe(float64(score))
}

func (m *Metrics) blockPlaced() {
	if m == nil {
		return
	}
	m.blocksPlaced.Inc()
}

func (m *Metrics) announced(category string) {
	if m == nil {
		return
	}
	m.announcements.WithLabelValues(category).Inc()
}

func (m *Metrics) eventDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}
