package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// MetricsNamespace prefixes every metric the service exports.
const MetricsNamespace = "storefront"

var (
	metricsOnce   sync.Once               //nolint:gochecknoglobals
	statements    *prometheus.CounterVec //nolint:gochecknoglobals
	writeFailures prometheus.Counter      //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct{}

// Run implements zerolog.Hook run method.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		statements.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook registers the logger metrics once and returns the hook.
// The service label is fixed by the first call.
func NewPrometheusHook(service string) PrometheusHook {
	registerMetrics(service)

	return PrometheusHook{}
}

func registerMetrics(service string) {
	metricsOnce.Do(func() {
		labels := prometheus.Labels{"service": service}

		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   MetricsNamespace,
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: labels,
			},
			[]string{"level"},
		)

		writeFailures = promauto.NewCounter(prometheus.CounterOpts{
			Namespace:   MetricsNamespace,
			Name:        "log_write_failures_total",
			Help:        "Number of log events zerolog could not write.",
			ConstLabels: labels,
		})
	})
}
