package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreated *prometheus.CounterVec
	expensesDeleted prometheus.Counter
	listRequests    *prometheus.CounterVec
	importRows      *prometheus.CounterVec
	reportRequests  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_expenses_created_total",
				Help: "Total number of ledger entries recorded",
			},
			[]string{"direction"},
		),
		expensesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_expenses_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
		),
		listRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_list_requests_total",
				Help: "Total number of expense list requests",
			},
			[]string{"consolidated"},
		),
		importRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_import_rows_total",
				Help: "Total number of CSV import rows by outcome",
			},
			[]string{"outcome"},
		),
		reportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_report_requests_total",
				Help: "Total number of report requests by report type",
			},
			[]string{"report"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_request_duration_milliseconds",
				Help:    "Request handling duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"path"},
		),
	}
}

func (m *PrometheusMetrics) RecordExpenseCreated(direction string) {
	m.expensesCreated.WithLabelValues(direction).Inc()
}

func (m *PrometheusMetrics) RecordExpenseDeleted() {
	m.expensesDeleted.Inc()
}

func (m *PrometheusMetrics) RecordListRequest(consolidated bool) {
	label := "no"
	if consolidated {
		label = "yes"
	}
	m.listRequests.WithLabelValues(label).Inc()
}

func (m *PrometheusMetrics) RecordImportRun(submitted, failed int) {
	m.importRows.WithLabelValues("submitted").Add(float64(submitted))
	m.importRows.WithLabelValues("failed").Add(float64(failed))
}

func (m *PrometheusMetrics) RecordReportRequest(report string) {
	m.reportRequests.WithLabelValues(report).Inc()
}

func (m *PrometheusMetrics) ObserveRequestDuration(path string, ms float64) {
	m.requestDuration.WithLabelValues(path).Observe(ms)
}
