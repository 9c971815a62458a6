// Package metrics собирает метрики Prometheus сервера.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder то, что сервисы и middleware пишут в метрики.
type Recorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
	RecordImageSlot()
	RecordCleanupFailure()
}

// Collector реализация Recorder поверх Prometheus.
type Collector struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	imageSlots      prometheus.Counter
	cleanupFailures prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reminder_http_requests_total",
			Help: "Количество HTTP запросов по маршруту и статусу",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reminder_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запросов",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		imageSlots: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reminder_image_upload_slots_total",
			Help: "Выданные ссылки на загрузку картинок",
		}),
		cleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reminder_image_cleanup_failures_total",
			Help: "Неудачные удаления картинок при удалении задач",
		}),
	}
	reg.MustRegister(c.requests, c.latency, c.imageSlots, c.cleanupFailures)
	return c
}

func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) RecordImageSlot() {
	c.imageSlots.Inc()
}

func (c *Collector) RecordCleanupFailure() {
	c.cleanupFailures.Inc()
}

// Nop ничего не записывает.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordImageSlot() {}
func (Nop) RecordCleanupFailure() {}

// Handler отдаёт метрики для скрейпа. Сжатие делает middleware роутера, поэтому promhttp его не включает.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{DisableCompression: true})
}
