// internal/server/metrics.go
//
// Prometheus 指標：
//   - grievance_http_requests_total{method,route,code}
//   - grievance_http_request_duration_seconds{route}
//   - grievance_mutations_total{op,result}   result = ok | unsaved | invalid | not_found | error
//   - grievance_complaints{status}           由 Store 即時統計
package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"grievance/internal/complaint"
)

// Metrics 持有獨立的 registry 與所有指標。
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

// NewMetrics 建立指標並註冊以 store 統計為來源的狀態 gauge。
func NewMetrics(store *complaint.Store) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grievance_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grievance_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grievance_mutations_total",
			Help: "Store mutations by operation and result.",
		}, []string{"op", "result"}),
	}

	for _, st := range complaint.Statuses() {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "grievance_complaints",
			Help:        "Complaints currently held, by status.",
			ConstLabels: prometheus.Labels{"status": string(st)},
		}, func() float64 {
			return float64(store.StatusTally()[st])
		})
	}
	return m
}

func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) observeMutation(op string, err error) {
	m.mutations.WithLabelValues(op, mutationResult(err)).Inc()
}

func mutationResult(err error) string {
	var ve *complaint.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errUnsaved):
		return "unsaved"
	case errors.Is(err, complaint.ErrNotFound):
		return "not_found"
	case errors.As(err, &ve):
		return "invalid"
	default:
		return "error"
	}
}
