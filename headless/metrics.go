package headless

import (
	"net/http"
	"time"

	"github.com/automoto/huskyhunt/components"
	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exports the simulation's vital signs.
//
// Metrics:
// * huskyhunt_ticks_total: counter
// * huskyhunt_tick_duration_seconds: histogram
// * huskyhunt_state: gauge holding the current state id
// * huskyhunt_live_bodies{kind}: gauge
// * huskyhunt_kills, huskyhunt_player_health, huskyhunt_boss_health: gauges
// * huskyhunt_transitions_total{from,to}: counter
// * huskyhunt_runs_total{outcome}: counter
type Metrics struct {
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	state        prometheus.Gauge
	liveBodies   *prometheus.GaugeVec
	kills        prometheus.Gauge
	playerHealth prometheus.Gauge
	bossHealth   prometheus.Gauge
	transitions  *prometheus.CounterVec
	runs         *prometheus.CounterVec
}

const namespace = "huskyhunt"

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one tick.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state",
			Help:      "Current game state id.",
		}),
		liveBodies: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_bodies",
			Help:      "Bodies in play by owner kind.",
		}, []string{"kind"}),
		kills: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kills",
			Help:      "Enemies killed in the current run.",
		}),
		playerHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_health",
			Help:      "Player health.",
		}),
		bossHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "boss_health",
			Help:      "Boss health, zero when no boss is up.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "State machine transitions.",
		}, []string{"from", "to"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.ticks, m.tickDuration, m.state, m.liveBodies, m.kills,
		m.playerHealth, m.bossHealth, m.transitions, m.runs,
	)
	return m
}

var observedKinds = []components.EntityKind{
	components.KindEnemy,
	components.KindProjectile,
	components.KindBoss,
	components.KindPortal,
}

// Observe records one tick. prev is the state before the tick began.
func (m *Metrics) Observe(g *core.Game, prev cfg.GameStateID, took time.Duration) {
	m.ticks.Inc()
	m.tickDuration.Observe(took.Seconds())

	state := g.State()
	m.state.Set(float64(state))
	if state != prev {
		m.transitions.WithLabelValues(prev.String(), state.String()).Inc()
		if state.IsGameOver() {
			m.runs.WithLabelValues(state.String()).Inc()
		}
	}

	for _, kind := range observedKinds {
		m.liveBodies.WithLabelValues(kind.String()).Set(float64(g.LiveCount(kind)))
	}
	m.kills.Set(float64(g.Data().Kills))
	m.playerHealth.Set(float64(g.PlayerHealth().Current))

	boss, ok := g.BossHealth()
	if !ok {
		boss.Current = 0
	}
	m.bossHealth.Set(float64(boss.Current))
}

// Handler serves the metrics gathered by gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
