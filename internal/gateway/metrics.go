package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the gateway's instrumentation on a private registry, so
// multiple servers in one process (tests included) never collide on
// collector registration.
type metrics struct {
	registry *prometheus.Registry

	streamsOpened  *prometheus.CounterVec
	messagesPosted *prometheus.CounterVec
	rateLimited    *prometheus.CounterVec
	toolCalls      *prometheus.CounterVec
}

func newMetrics(sessionCount func() int) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		streamsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_streams_opened_total",
			Help: "SSE stream attempts by outcome.",
		}, []string{"outcome"}),
		messagesPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_messages_posted_total",
			Help: "Message posts by result.",
		}, []string{"result"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_rate_limited_total",
			Help: "Free-tier rejections by limit kind.",
		}, []string{"limit"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_tool_calls_total",
			Help: "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
	}
	sessions := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gateway_active_sessions",
		Help: "Sessions currently registered.",
	}, func() float64 { return float64(sessionCount()) })

	m.registry.MustRegister(m.streamsOpened, m.messagesPosted, m.rateLimited, m.toolCalls, sessions)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
