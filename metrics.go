package recordhub

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "recordhub"

// storeMetrics holds the collectors for one store. A nil *storeMetrics
// records nothing.
type storeMetrics struct {
	writes       prometheus.Counter
	replacements prometheus.Counter
	records      prometheus.Gauge
}

// newStoreMetrics creates the store's collectors and registers them on reg.
func newStoreMetrics(reg prometheus.Registerer, storeName string) (*storeMetrics, error) {
	labels := prometheus.Labels{"store": storeName}

	m := &storeMetrics{
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "writes_total",
			Help:        "Number of Set calls applied to the store.",
			ConstLabels: labels,
		}),
		replacements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "replacements_total",
			Help:        "Number of Set calls that overwrote an existing record.",
			ConstLabels: labels,
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "records",
			Help:        "Number of records currently held by the store.",
			ConstLabels: labels,
		}),
	}

	collectors := []prometheus.Collector{m.writes, m.replacements, m.records}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// roll back so a failed New leaves the registerer untouched
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("failed to register metrics for store %q: %w", storeName, err)
		}
	}

	return m, nil
}

// observeWrite records one applied write.
func (m *storeMetrics) observeWrite(replaced bool, size int) {
	if m == nil {
		return
	}
	m.writes.Inc()
	if replaced {
		m.replacements.Inc()
	}
	m.records.Set(float64(size))
}
