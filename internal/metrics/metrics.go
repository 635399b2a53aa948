package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passchart_upstream_requests_total",
			Help: "Total number of requests sent to heavens-above.",
		},
		[]string{"endpoint", "code"},
	)

	upstreamDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "passchart_upstream_duration_seconds",
			Help:    "Upstream request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	fallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passchart_fallbacks_total",
			Help: "Times the pass chart chain fell back to the whole-sky chart, by failure kind.",
		},
		[]string{"kind"},
	)

	chartBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "passchart_chart_bytes",
			Help: "Size of the last chart image retrieved, by source.",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(upstreamRequestsTotal)
	prometheus.MustRegister(upstreamDurationSeconds)
	prometheus.MustRegister(fallbacksTotal)
	prometheus.MustRegister(chartBytes)
}

// ObserveUpstream records one upstream request. code is the HTTP status
// code, or "error" when no response was received.
func ObserveUpstream(endpoint, code string, d time.Duration) {
	upstreamRequestsTotal.WithLabelValues(endpoint, code).Inc()
	upstreamDurationSeconds.WithLabelValues(endpoint).Observe(d.Seconds())
}

// IncFallback counts a fallback triggered by a failure of the given kind.
func IncFallback(kind string) {
	fallbacksTotal.WithLabelValues(kind).Inc()
}

// SetChartBytes records the size of the chart delivered from source.
func SetChartBytes(source string, n int) {
	chartBytes.WithLabelValues(source).Set(float64(n))
}

// WriteTextfile dumps all registered metrics to path in the text exposition
// format, for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
