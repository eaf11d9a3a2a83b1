package observer

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpLabels = []string{"method", "route", "status"}

	// HTTPRequestsTotal 按路由和状态码统计请求数
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_http_requests_total",
			Help: "Total number of HTTP requests, labeled by method, route and status.",
		},
		httpLabels,
	)

	// HTTPRequestDurationSeconds 请求耗时
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estate_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	// PropertiesIngestedTotal 通过表格导入的房源数
	PropertiesIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estate_properties_ingested_total",
			Help: "Total number of property records created from spreadsheet uploads.",
		},
	)

	// UploadsRejectedTotal 被拒绝的上传，按原因区分
	UploadsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_uploads_rejected_total",
			Help: "Total number of rejected spreadsheet uploads, labeled by reason.",
		},
		[]string{"reason"},
	)

	// CallsInitiatedTotal 发起的联系次数
	CallsInitiatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_calls_initiated_total",
			Help: "Total number of contact attempts recorded, labeled by contact type.",
		},
		[]string{"contact_type"},
	)

	// CallsUpdatedTotal 联系结果更新次数
	CallsUpdatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_calls_updated_total",
			Help: "Total number of call outcome updates, labeled by requirement status.",
		},
		[]string{"requirement_status"},
	)
)

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler 返回 /metrics 的处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
