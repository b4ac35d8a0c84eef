package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kmarens/famsched/core/metrics"
	"github.com/kmarens/famsched/core/model"
)

// PromSink records planner events in Prometheus metrics.
type PromSink struct {
	schedules   *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	balance     *prometheus.GaugeVec
	family      prometheus.Gauge
}

// NewPromSink registers planner metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		schedules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "famsched_schedules_generated_total",
			Help: "Total number of generated child weeks",
		}, []string{"age_group"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "famsched_conflicts_total",
			Help: "Total number of conflicts found during generation",
		}, []string{"age_group"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "famsched_diagnostics_total",
			Help: "Total number of skipped or malformed input records",
		}, []string{"age_group"}),
		balance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "famsched_balance_score",
			Help: "Last balance score per child",
		}, []string{"child_id"}),
		family: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "famsched_family_optimization_score",
			Help: "Last family optimization score",
		}),
	}
	for _, c := range []prometheus.Collector{s.schedules, s.conflicts, s.diagnostics, s.balance, s.family} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordScheduleGenerated updates the per-child counters and gauge.
func (s *PromSink) RecordScheduleGenerated(childID string, group model.AgeGroup, conflicts, diagnostics, balanceScore int) error {
	s.schedules.WithLabelValues(string(group)).Inc()
	s.conflicts.WithLabelValues(string(group)).Add(float64(conflicts))
	s.diagnostics.WithLabelValues(string(group)).Add(float64(diagnostics))
	s.balance.WithLabelValues(childID).Set(float64(balanceScore))
	return nil
}

// RecordFamilyOptimized sets the family score gauge.
func (s *PromSink) RecordFamilyOptimized(_, optimizationScore int) error {
	s.family.Set(float64(optimizationScore))
	return nil
}

var _ coremetrics.Sink = (*PromSink)(nil)
