// Package metrics concentra as métricas Prometheus expostas em /metrics
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "toystore"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP atendidas",
	}, []string{"method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latência das requisições HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	ReportComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_compute_duration_seconds",
		Help:      "Tempo de cálculo dos relatórios de vendas",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report"})

	ReportCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_results_total",
		Help:      "Acertos e falhas do cache de relatórios",
	}, []string{"report", "result"})

	SnapshotRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_snapshot_runs_total",
		Help:      "Execuções do agendador de snapshots por resultado",
	}, []string{"result"})
)

// ObserveRequest registra uma requisição finalizada
func ObserveRequest(method string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveReport mede o cálculo de um relatório; uso: defer metrics.ObserveReport("daily", time.Now())
func ObserveReport(report string, start time.Time) {
	ReportComputeDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}
