package status

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks Prometheus counters/gauges for the running engine. All
// methods handle a nil receiver so callers never have to guard calls when
// metrics are disabled.
type Metrics struct {
	Gatherer prometheus.Gatherer

	ActiveUsers      prometheus.Gauge
	RotationsTotal   *prometheus.CounterVec
	RequestsTotal    prometheus.Counter
	RotationDuration prometheus.Histogram
}

// NewMetrics registers rangewalker_* collectors against reg, which must
// also implement prometheus.Gatherer (true of *prometheus.Registry) so
// /metrics can serve exactly these collectors rather than the global
// default registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Gatherer: reg,
		ActiveUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rangewalker_active_users",
			Help: "Number of virtual-user tasks currently running.",
		}),
		RotationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rangewalker_rotations_total",
			Help: "Total rotation attempts by outcome.",
		}, []string{"outcome"}),
		RequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rangewalker_requests_total",
			Help: "Total HTTP fetches issued by virtual users.",
		}),
		RotationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rangewalker_rotation_duration_seconds",
			Help:    "Wall-clock duration of a rotation attempt, pause-raise to pause-lower.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.ActiveUsers, m.RotationsTotal, m.RequestsTotal, m.RotationDuration)
	return m
}

func (m *Metrics) SetActiveUsers(n int) {
	if m == nil {
		return
	}
	m.ActiveUsers.Set(float64(n))
}

func (m *Metrics) RecordRotation(success bool, durationSeconds float64) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.RotationsTotal.WithLabelValues(outcome).Inc()
	m.RotationDuration.Observe(durationSeconds)
}

func (m *Metrics) RecordRequest() {
	if m == nil {
		return
	}
	m.RequestsTotal.Inc()
}
