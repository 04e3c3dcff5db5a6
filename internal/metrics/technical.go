package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace общий префикс метрик сервиса.
const namespace = "secret_santa"

var (
	// APIHitsTotal обращения к эндпоинтам по шаблону маршрута
	APIHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "hits_total",
			Help:      "Total number of API calls per route.",
		},
		[]string{"route"},
	)

	// APIDuration длительность обработки в миллисекундах
	APIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "duration_ms",
			Help:      "API call duration in milliseconds.",
			// Жеребьёвка с рассылкой заметно дольше остальных вызовов
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
		[]string{"route", "method"},
	)

	// APIResponsesTotal ответы по классу статуса (2xx, 4xx, 5xx)
	APIResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "responses_total",
			Help:      "API responses per route and status class.",
		},
		[]string{"route", "class"},
	)
)

// ObserveAPICall учитывает один обработанный вызов API.
func ObserveAPICall(route, method string, status int, took time.Duration) {
	APIHitsTotal.WithLabelValues(route).Inc()
	APIDuration.WithLabelValues(route, method).Observe(float64(took.Milliseconds()))
	APIResponsesTotal.WithLabelValues(route, StatusClass(status)).Inc()
}

// StatusClass сворачивает код ответа до класса: 201 -> "2xx".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
