package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 生成指标
	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tts_generation_total",
			Help: "TTS generation attempts by provider and terminal status",
		},
		[]string{"provider", "status"},
	)
	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tts_generation_duration_seconds",
			Help:    "Provider dispatch latency",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"provider"},
	)
	audioSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tts_audio_size_bytes",
			Help:    "Size of generated audio payloads",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		},
	)
)

// RecordHTTPRequest 记录一次 HTTP 请求
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordGeneration 记录一次生成尝试的终态
func RecordGeneration(provider, status string, duration time.Duration) {
	generationTotal.WithLabelValues(provider, status).Inc()
	generationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordAudioSize 记录成功生成的音频大小
func RecordAudioSize(size int64) {
	audioSizeBytes.Observe(float64(size))
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
