// Package metrics Prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wa_admin_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wa_admin_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wa_admin_mutations_total",
		Help: "Facade mutations by entity, operation and result",
	}, []string{"entity", "op", "result"})

	reportCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wa_admin_report_cache_lookups_total",
		Help: "Report metrics cache lookups by result",
	}, []string{"result"})

	reportExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wa_admin_report_exports_total",
		Help: "Report exports by trigger and result",
	}, []string{"trigger", "result"})

	taskRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wa_admin_task_runs_total",
		Help: "Scheduled task runs by task and result",
	}, []string{"task", "result"})
)

// ObserveHTTPRequest 记录一次 HTTP 请求
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveMutation 记录一次写操作
func ObserveMutation(entity, op string, err error) {
	mutationsTotal.WithLabelValues(entity, op, result(err)).Inc()
}

// ObserveReportCache 报表缓存命中情况
func ObserveReportCache(hit bool) {
	if hit {
		reportCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	reportCacheLookups.WithLabelValues("miss").Inc()
}

// ObserveExport 报表导出
func ObserveExport(trigger string, err error) {
	reportExports.WithLabelValues(trigger, result(err)).Inc()
}

// ObserveTask 定时任务执行
func ObserveTask(task string, err error) {
	taskRuns.WithLabelValues(task, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
