package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	leadTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_transitions_total",
		Help: "Guest lead state transitions.",
	}, []string{"transition"})

	offersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "offers_accepted_total",
		Help: "Accepted offers.",
	})
)

// MetricsMiddleware records per-route request counters and latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	handler := promhttp.Handler()
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// CountLeadTransition bumps the lead workflow counter.
func CountLeadTransition(transition string) {
	leadTransitionsTotal.WithLabelValues(transition).Inc()
}

// CountOfferAccepted bumps the acceptance counter.
func CountOfferAccepted() {
	offersAcceptedTotal.Inc()
}
