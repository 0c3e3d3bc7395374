package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skysay_provider_calls_total",
			Help: "Total weather and geolocation API calls",
		},
		[]string{"provider", "endpoint", "status"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skysay_provider_latency_seconds",
			Help:    "Weather and geolocation API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "endpoint"},
	)

	QualityFlagsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skysay_quality_flags_total",
			Help: "Total implausible values seen in fetched weather data",
		},
		[]string{"flag"},
	)

	ReportsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skysay_reports_rendered_total",
			Help: "Total reports rendered",
		},
		[]string{"shape"},
	)
)

// WriteTextfile dumps every registered metric to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
