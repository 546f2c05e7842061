// Package metrics exposes Prometheus metrics for the back office.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks page serving and upstream property-API traffic.
type Metrics struct {
	registry   *prometheus.Registry
	pageReqCnt *prometheus.CounterVec
	pageReqDur *prometheus.HistogramVec
	apiReqCnt  *prometheus.CounterVec
	apiReqDur  *prometheus.HistogramVec
}

// New builds a registry with process/Go collectors plus the back-office series.
func New(namespace string) *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	pageReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "page_requests_total"}, []string{"page", "status"})
	pageReqDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "page_request_duration_seconds"}, []string{"page"})
	apiReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "api_requests_total"}, []string{"method", "path", "status"})
	apiReqDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "api_request_duration_seconds"}, []string{"method", "path"})
	r.MustRegister(pageReqCnt, pageReqDur, apiReqCnt, apiReqDur)

	return &Metrics{
		registry:   r,
		pageReqCnt: pageReqCnt,
		pageReqDur: pageReqDur,
		apiReqCnt:  apiReqCnt,
		apiReqDur:  apiReqDur,
	}
}

// ObservePage records one rendered page.
func (m *Metrics) ObservePage(page string, status int, dur time.Duration) {
	m.pageReqCnt.WithLabelValues(page, strconv.Itoa(status)).Inc()
	m.pageReqDur.WithLabelValues(page).Observe(dur.Seconds())
}

// ObserveAPICall records one upstream property-API call.
func (m *Metrics) ObserveAPICall(method, path string, status int, dur time.Duration) {
	m.apiReqCnt.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.apiReqDur.WithLabelValues(method, path).Observe(dur.Seconds())
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
