package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sentra-hq/sentra/internal/common/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry     *prometheus.Registry
	namespace    string
	httpReqCnt   *prometheus.CounterVec
	httpDur      *prometheus.HistogramVec
	httpInfl     *prometheus.GaugeVec
	bootstrapCnt *prometheus.CounterVec
	bootstrapDur *prometheus.HistogramVec
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	if ns == "" {
		ns = "sentra"
	}
	r := prometheus.NewRegistry()
	// Register standard process and Go collectors
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	// Register basic HTTP metrics
	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: cfg.Buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	// Session bootstrap metrics, labeled by resolution result
	bootstrapCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "session_bootstrap_total"}, []string{"result"})
	bootstrapDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "session_bootstrap_duration_seconds", Buckets: cfg.Buckets}, []string{"result"})
	r.MustRegister(bootstrapCnt, bootstrapDur)

	return &Metrics{
		registry:     r,
		namespace:    ns,
		httpReqCnt:   httpReqCnt,
		httpDur:      httpDur,
		httpInfl:     httpInfl,
		bootstrapCnt: bootstrapCnt,
		bootstrapDur: bootstrapDur,
	}
}

// BootstrapDone records the outcome of one session bootstrap attempt. The
// result label is "resolved" on success or the failure kind otherwise.
func (m *Metrics) BootstrapDone(result string, since time.Time) {
	m.bootstrapCnt.WithLabelValues(result).Inc()
	m.bootstrapDur.WithLabelValues(result).Observe(time.Since(since).Seconds())
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := httpStatus(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func httpStatus(code int) string { return strconv.Itoa(code) }
