package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rbac"

var (
	PanicCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panic_total",
		Help:      "panic total counter.",
	}, []string{"method", "path"})

	RequestCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "http request total counter.",
	}, []string{"method", "path", "status"})

	RequestDurationVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "http request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	LoginCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_total",
		Help:      "login attempts by result.",
	}, []string{"result"})
)

// Registry 服务自有指标,另含go运行时与进程指标
var Registry = func() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		PanicCounterVec,
		RequestCounterVec,
		RequestDurationVec,
		LoginCounterVec,
	)
	return r
}()

// Handler /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
