// Package metrics 提供 Prometheus helper，包含 HTTP 与业务指标模板
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	registry *prometheus.Registry

	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// 业务指标
	ScoresCalculatedTotal   prometheus.Counter
	ValidationsTotal        prometheus.Counter
	NonCompliantTotal       prometheus.Counter
	ClassificationsTotal    prometheus.Counter
	TradeMessagesTotal      prometheus.Counter
	OracleRequestsTotal     *prometheus.CounterVec
	ValidationRuleHistogram prometheus.Histogram
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ScoresCalculatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "scores_calculated_total",
			Help:      "Total ESG scores calculated",
		}),
		ValidationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "validations_total",
			Help:      "Total compliance validations",
		}),
		NonCompliantTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "non_compliant_total",
			Help:      "Validations with overall status non-compliant",
		}),
		ClassificationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "classifications_total",
			Help:      "Total ISO 20022 ESG classifications produced",
		}),
		TradeMessagesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "trade_messages_total",
			Help:      "Total SETR trade messages assembled",
		}),
		OracleRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "oracle_requests_total",
			Help:      "Oracle data requests by type",
		}, []string{"data_type"}),
		ValidationRuleHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "esg",
			Subsystem: serviceName,
			Name:      "validation_rules",
			Help:      "Number of rules evaluated per validation",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ScoresCalculatedTotal,
		m.ValidationsTotal,
		m.NonCompliantTotal,
		m.ClassificationsTotal,
		m.TradeMessagesTotal,
		m.OracleRequestsTotal,
		m.ValidationRuleHistogram,
	)

	return m
}

// Handler 返回 /metrics 的 HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
