// Package metrics exports game lifecycle counters to Prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/simon-says/game"
)

const namespace = "simon"

// Recorder implements game.Observer on its own registry
type Recorder struct {
	registry *prometheus.Registry

	gamesStarted    prometheus.Counter
	roundsCompleted prometheus.Counter
	gamesOver       prometheus.Counter
	inputsIgnored   *prometheus.CounterVec
	highScore       prometheus.Gauge
	finalScore      prometheus.Histogram
}

// NewRecorder registers the game collectors plus Go runtime collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started.",
		}),
		roundsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_completed_total",
			Help:      "Rounds the player reproduced correctly.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Games ended by a mismatch.",
		}),
		inputsIgnored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_ignored_total",
			Help:      "Player inputs discarded, by phase.",
		}, []string{"phase"}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "high_score",
			Help:      "Best score seen by this process.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			// Triangular numbers: scores after 1..10 complete rounds
			Buckets: []float64{0, 1, 3, 6, 10, 15, 21, 28, 36, 45, 55},
		}),
	}

	r.registry.MustRegister(
		r.gamesStarted,
		r.roundsCompleted,
		r.gamesOver,
		r.inputsIgnored,
		r.highScore,
		r.finalScore,
		collectors.NewGoCollector(),
	)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// SetHighScore seeds the gauge with the loaded value
func (r *Recorder) SetHighScore(high int) {
	r.highScore.Set(float64(high))
}

func (r *Recorder) GameStarted(string) {
	r.gamesStarted.Inc()
}

func (r *Recorder) RoundCompleted(_ string, _, _ int) {
	r.roundsCompleted.Inc()
}

func (r *Recorder) GameEnded(_ string, score, high int, _ bool) {
	r.gamesOver.Inc()
	r.finalScore.Observe(float64(score))
	r.highScore.Set(float64(high))
}

func (r *Recorder) InputIgnored(phase game.GamePhase, _ game.Action) {
	r.inputsIgnored.WithLabelValues(phase.String()).Inc()
}

var _ game.Observer = (*Recorder)(nil)
