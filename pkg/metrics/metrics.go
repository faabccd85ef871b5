package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "momentum_request_duration_seconds",
			Help: "Request duration in seconds",
		},
		[]string{"method", "path"},
	)

	FinalizeCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_day_finalizations_total",
			Help: "Finalized days by trigger and outcome",
		},
		[]string{"trigger", "outcome"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCount, RequestDuration, FinalizeCount)
	})
}
