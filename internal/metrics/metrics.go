package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - набор prometheus-коллекторов сервиса.
// Все методы безопасны для nil-получателя, чтобы сервисы работали без метрик.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	incidentsCreated *prometheus.CounterVec
	analyses         *prometheus.CounterVec
	voiceSessions    prometheus.Gauge
	webhookDelivery  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "responder_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "responder_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"method", "route"}),
		incidentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "responder_incidents_created_total",
			Help: "Incidents created, by source (api, simulated, voice).",
		}, []string{"source"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "responder_analyses_total",
			Help: "Processed emergency calls by classification.",
		}, []string{"classification"}),
		voiceSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "responder_voice_sessions_active",
			Help: "Currently open voice transcription sessions.",
		}),
		webhookDelivery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "responder_webhook_deliveries_total",
			Help: "Dispatch webhook delivery attempts by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.incidentsCreated,
		m.analyses,
		m.voiceSessions,
		m.webhookDelivery,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware считает запросы и их длительность по шаблону маршрута
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) IncidentCreated(source string) {
	if m == nil {
		return
	}
	m.incidentsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) AnalysisProcessed(emergency bool) {
	if m == nil {
		return
	}
	classification := "inquiry"
	if emergency {
		classification = "emergency"
	}
	m.analyses.WithLabelValues(classification).Inc()
}

func (m *Metrics) SetVoiceSessions(n int) {
	if m == nil {
		return
	}
	m.voiceSessions.Set(float64(n))
}

func (m *Metrics) WebhookDelivered(ok bool) {
	if m == nil {
		return
	}
	result := "failed"
	if ok {
		result = "delivered"
	}
	m.webhookDelivery.WithLabelValues(result).Inc()
}
