// Package metrics instruments 3-coloring searches with Prometheus
// collectors fed by the coloring package's progress hooks.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvcolor/coloring"
)

// Label values for lvcolor_searches_total and lvcolor_attempts_total.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	OutcomeOK      = "ok"
	OutcomeFail    = "fail"
)

// SearchMetrics holds the collectors for coloring runs.
type SearchMetrics struct {
	Searches   *prometheus.CounterVec
	Candidates *prometheus.CounterVec
	Attempts   *prometheus.CounterVec
	Duration   prometheus.Histogram
}

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) (*SearchMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &SearchMetrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvcolor_searches_total",
			Help: "Total number of finished coloring runs, labelled by result.",
		}, []string{"result"}),

		Candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvcolor_candidates_total",
			Help: "Total number of locked sets enumerated, labelled by independence.",
		}, []string{"independent"}),

		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvcolor_attempts_total",
			Help: "Total number of 2-coloring attempts, labelled by outcome.",
		}, []string{"outcome"}),

		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvcolor_search_duration_seconds",
			Help:    "Wall time of finished coloring runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.Searches, m.Candidates, m.Attempts, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return m, nil
}

// Options returns coloring hooks that feed m. The hooks share one start
// time, so call Options once per run:
//
//	col, ok, err := coloring.ThreeColor(g, m.Options()...)
//
// They replace any OnStart/OnCandidate/OnAttempt/OnDone hooks passed
// before them. Runs that end with an error are not observed.
func (m *SearchMetrics) Options() []coloring.Option {
	var start time.Time

	return []coloring.Option{
		coloring.WithOnStart(func(int) {
			start = time.Now()
		}),
		coloring.WithOnCandidate(func(_ []int, independent bool) {
			m.Candidates.WithLabelValues(strconv.FormatBool(independent)).Inc()
		}),
		coloring.WithOnAttempt(func(_ []int, ok bool) {
			outcome := OutcomeFail
			if ok {
				outcome = OutcomeOK
			}
			m.Attempts.WithLabelValues(outcome).Inc()
		}),
		coloring.WithOnDone(func(found bool) {
			result := ResultNotFound
			if found {
				result = ResultFound
			}
			m.Searches.WithLabelValues(result).Inc()
			m.Duration.Observe(time.Since(start).Seconds())
		}),
	}
}
