package frame

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "pagesim"

// Metrics counts references, faults and evictions per policy. A nil *Metrics records nothing.
type Metrics struct {
	references *prometheus.CounterVec
	faults     *prometheus.CounterVec
	evictions  *prometheus.CounterVec
}

// NewMetrics creates the simulator counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		references: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "references_total",
			Help:      "Number of page references processed.",
		}, []string{"policy"}),
		faults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "page_faults_total",
			Help:      "Number of references that found their page not resident.",
		}, []string{"policy"}),
		evictions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evictions_total",
			Help:      "Number of faults that replaced a resident page.",
		}, []string{"policy"}),
	}
}

func (m *Metrics) observe(policy Policy, step Step) {
	if m == nil {
		return
	}
	label := policy.String()
	m.references.WithLabelValues(label).Inc()
	if step.Fault {
		m.faults.WithLabelValues(label).Inc()
	}
	if step.Evicted {
		m.evictions.WithLabelValues(label).Inc()
	}
}
