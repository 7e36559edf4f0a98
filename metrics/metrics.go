// Package metrics collects and exposes Prometheus metrics for HTTP
// traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the HTTP traffic metrics.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	exportsTotal    *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inspecta_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "inspecta_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inspecta_report_exports_total",
			Help: "Report exports by format and outcome",
		}, []string{"format", "outcome"}),
	}

	c.registry.MustRegister(c.requestsTotal, c.requestDuration, c.exportsTotal)
	return c
}

// RecordExport counts one export attempt.
func (c *Collector) RecordExport(format string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	c.exportsTotal.WithLabelValues(format, outcome).Inc()
}

// Middleware returns a gin middleware recording per-request metrics.
// Routes are labeled by pattern, not raw path, to keep cardinality
// bounded.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the /metrics exposition handler.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
