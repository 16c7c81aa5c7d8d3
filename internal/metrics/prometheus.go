package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder backed by Prometheus
type PrometheusRecorder struct {
	playersAdded    prometheus.Counter
	playersRejected *prometheus.CounterVec
	playersDropped  prometheus.Counter
	teamsMade       *prometheus.CounterVec
	lineupPlaced    prometheus.Histogram
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheus creates the collectors and registers them on reg.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "soccer_team" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "soccer_team"
	}

	p := &PrometheusRecorder{
		playersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "players_added_total",
			Help:      "Total players added to rosters.",
		}),
		playersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "players_rejected_total",
			Help:      "Total rejected player adds by error code.",
		}, []string{"code"}),
		playersDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "players_dropped_total",
			Help:      "Total lowest skilled players dropped from full rosters.",
		}),
		teamsMade: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "make_team_total",
			Help:      "Make team outcomes (success,failure).",
		}, []string{"result"}),
		lineupPlaced: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lineup",
			Name:      "placed_players",
			Help:      "Players placed per built lineup.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}),
	}

	reg.MustRegister(p.playersAdded, p.playersRejected, p.playersDropped, p.teamsMade, p.lineupPlaced)
	return p
}

func (p *PrometheusRecorder) PlayerAdded() {
	p.playersAdded.Inc()
}

func (p *PrometheusRecorder) PlayerRejected(code string) {
	p.playersRejected.WithLabelValues(code).Inc()
}

func (p *PrometheusRecorder) PlayerDropped() {
	p.playersDropped.Inc()
}

func (p *PrometheusRecorder) TeamMade(result string) {
	p.teamsMade.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) LineupBuilt(placed int) {
	p.lineupPlaced.Observe(float64(placed))
}
