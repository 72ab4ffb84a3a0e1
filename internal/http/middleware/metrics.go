package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Labels stay bounded: route is the registered Gin pattern (or "unmatched"),
// resource and operation come from a fixed vocabulary.
var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	requestsInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "HTTP requests currently being served.",
		},
	)

	crudOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crud_operations_total",
			Help: "Resource operations by resource, operation and outcome.",
		},
		[]string{"resource", "operation", "outcome"},
	)

	idempotentReplays = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crud_idempotent_replays_total",
			Help: "Creates answered from a stored Idempotency-Key instead of inserting.",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, requestsInflight, crudOps, idempotentReplays)
}

// Metrics records request count, latency and concurrency for every request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestsInflight.Inc()
		defer requestsInflight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ResourceMetrics counts resource operations for routes mounted under base.
// GET {base}/users/:id is ("users", "get"), GET {base}/users/email/:email is
// ("users", "find"). Replayed idempotent creates are counted separately.
func ResourceMetrics(base string) gin.HandlerFunc {
	prefix := strings.TrimRight(base, "/") + "/"
	return func(c *gin.Context) {
		c.Next()

		resource, op, ok := classifyRoute(prefix, c.Request.Method, c.FullPath())
		if !ok {
			return
		}
		crudOps.WithLabelValues(resource, op, outcome(c.Writer.Status())).Inc()
		if c.Writer.Header().Get("Idempotency-Replayed") == "true" {
			idempotentReplays.WithLabelValues(resource).Inc()
		}
	}
}

// classifyRoute maps a registered route under prefix to a resource name and
// one of list, count, exists, get, create, update, delete or find.
func classifyRoute(prefix, method, route string) (resource, op string, ok bool) {
	if !strings.HasPrefix(route, prefix) {
		return "", "", false
	}
	parts := strings.Split(strings.TrimPrefix(route, prefix), "/")
	resource = parts[0]
	if resource == "" {
		return "", "", false
	}
	rest := parts[1:]

	switch {
	case len(rest) == 0 && method == http.MethodGet:
		op = "list"
	case len(rest) == 0 && method == http.MethodPost:
		op = "create"
	case len(rest) == 1 && rest[0] == "count":
		op = "count"
	case len(rest) == 1 && rest[0] == "paginated":
		op = "list"
	case len(rest) == 2 && strings.HasPrefix(rest[0], ":") && rest[1] == "exists":
		op = "exists"
	case len(rest) == 1 && strings.HasPrefix(rest[0], ":"):
		switch method {
		case http.MethodGet:
			op = "get"
		case http.MethodPut:
			op = "update"
		case http.MethodDelete:
			op = "delete"
		default:
			return "", "", false
		}
	case method == http.MethodGet:
		op = "find"
	default:
		return "", "", false
	}
	return resource, op, true
}

func outcome(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status == http.StatusNotFound:
		return "not_found"
	case status >= 400:
		return "rejected"
	default:
		return "ok"
	}
}
