package providers

import (
	"time"
	"vcheck/internal/models"
	"vcheck/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncUpstreamRequests(platform models.Platform, operation string, outcome string)
	ObserveUpstreamDuration(platform models.Platform, operation string, duration time.Duration)
	IncComparisons(status models.Status)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	comparisonsTotal *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncUpstreamRequests(platform models.Platform, operation string, outcome string) {
	m.upstreamTotal.WithLabelValues(string(platform), operation, outcome).Inc()
}

func (m *MetricsProvider) ObserveUpstreamDuration(platform models.Platform, operation string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(string(platform), operation).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncComparisons(status models.Status) {
	m.comparisonsTotal.WithLabelValues(string(status)).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcheck_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vcheck_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		upstreamTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcheck_upstream_requests_total",
			Help: "Total number of calls to GOG and Steam by outcome",
		}, []string{"platform", "operation", "outcome"}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vcheck_upstream_duration_seconds",
			Help:    "Latency of calls to GOG and Steam in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"platform", "operation"}),

		comparisonsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcheck_comparisons_total",
			Help: "Completed comparisons by freshness status",
		}, []string{"status"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)                     {}
func (n *noopMetrics) IncUpstreamRequests(_ models.Platform, _ string, _ string)            {}
func (n *noopMetrics) ObserveUpstreamDuration(_ models.Platform, _ string, _ time.Duration) {}
func (n *noopMetrics) IncComparisons(_ models.Status)                                       {}
