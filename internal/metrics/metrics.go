// Package metrics exposes Prometheus counters for served games.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// Collector counts engine activity across all sessions. It implements
// blocks.Observer, so one collector can be attached to every runner.
type Collector struct {
	registry *prometheus.Registry

	stimuli        *prometheus.CounterVec
	rowsCleared    prometheus.Counter
	piecesLocked   prometheus.Counter
	gamesOver      prometheus.Counter
	finalScore     prometheus.Histogram
	activeSessions prometheus.Gauge
}

// New creates a collector with its own registry under namespace.
func New(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		stimuli: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stimuli_total",
			Help:      "Stimuli processed by engines, by kind",
		}, []string{"kind"}),
		rowsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_cleared_total",
			Help:      "Total number of cleared rows",
		}),
		piecesLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_locked_total",
			Help:      "Total number of pieces merged into playfields",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Total number of games that ended on a blocked spawn",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of connected players",
		}),
	}

	c.registry.MustRegister(
		c.stimuli,
		c.rowsCleared,
		c.piecesLocked,
		c.gamesOver,
		c.finalScore,
		c.activeSessions,
	)
	return c
}

// Observe records one processed stimulus.
func (c *Collector) Observe(res blocks.Result) {
	c.stimuli.WithLabelValues(res.Stimulus.String()).Inc()
	if res.RowsCleared > 0 {
		c.rowsCleared.Add(float64(res.RowsCleared))
	}
	if res.Locked {
		c.piecesLocked.Inc()
	}
	// A locking stimulus that ends in game over is the transition; later
	// no-op stimuli also report GameOver but never lock.
	if res.Locked && res.GameOver {
		c.gamesOver.Inc()
	}
}

// GameOver records the final score of a finished game.
func (c *Collector) GameOver(score int) {
	c.finalScore.Observe(float64(score))
}

// SessionStarted increments the active session gauge.
func (c *Collector) SessionStarted() {
	c.activeSessions.Inc()
}

// SessionEnded decrements the active session gauge.
func (c *Collector) SessionEnded() {
	c.activeSessions.Dec()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
