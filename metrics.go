package sanitizers

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts sanitizer rejections. Collectors are created unregistered;
// call MustRegister to expose them.
type Metrics struct {
	// rejections counts values replaced by InnocuousOutput, per transform.
	rejections *prometheus.CounterVec

	// tagsDropped counts tags removed by StripHTMLTags.
	tagsDropped prometheus.Counter
}

// NewMetrics creates sanitizer metrics under namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sanitizer",
				Name:      "rejections_total",
				Help:      "Total number of values replaced by the innocuous placeholder",
			},
			[]string{"transform"},
		),
		tagsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sanitizer",
				Name:      "tags_dropped_total",
				Help:      "Total number of tags removed while stripping HTML",
			},
		),
	}
}

// MustRegister registers all collectors with registry.
func (m *Metrics) MustRegister(registry prometheus.Registerer) {
	registry.MustRegister(m.rejections, m.tagsDropped)
}

// Init pre-initializes the rejection counter of every filtering transform
// so the series exist before the first rejection.
func (m *Metrics) Init() {
	for _, name := range rejectingDirectives {
		m.rejections.WithLabelValues(name)
	}
}

// RecordRejection records that transform replaced a value.
func (m *Metrics) RecordRejection(transform string) {
	m.rejections.WithLabelValues(transform).Inc()
}

// RecordTagsDropped records n tags removed by one strip.
func (m *Metrics) RecordTagsDropped(n int) {
	if n > 0 {
		m.tagsDropped.Add(float64(n))
	}
}
