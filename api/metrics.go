package api

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for outbound CMS calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cmsconsole",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "CMS API requests by method, endpoint and HTTP status.",
		}, []string{"method", "endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cmsconsole",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "CMS API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Metrics) observe(method, path string, code int, d time.Duration) {
	if m == nil {
		return
	}
	endpoint := endpointLabel(path)
	status := "error"
	if code > 0 {
		status = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(method, endpoint, status).Inc()
	m.duration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// endpointLabel collapses ids and drops the query so label cardinality
// stays bounded: /api/delete-blog/42 -> /api/delete-blog/:id.
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return numericSegment.ReplaceAllString(path, "/:id$1")
}
