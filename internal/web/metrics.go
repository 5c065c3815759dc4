package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the web server has done since it started.
type Metrics struct {
	Submissions  prometheus.Counter
	Rejected     *prometheus.CounterVec
	ResultsViews prometheus.Counter
	StoreErrors  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gift_inventory",
			Name:      "submissions_total",
			Help:      "Questionnaires stored.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gift_inventory",
			Name:      "submissions_rejected_total",
			Help:      "Submissions refused before anything was stored.",
		}, []string{"reason"}),
		ResultsViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gift_inventory",
			Name:      "results_views_total",
			Help:      "Results screens and API responses served.",
		}),
		StoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gift_inventory",
			Name:      "store_errors_total",
			Help:      "Failures reading or appending the response file.",
		}),
	}
	reg.MustRegister(m.Submissions, m.Rejected, m.ResultsViews, m.StoreErrors)
	return m
}
