package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa las métricas del servicio.
// Se registran en el Registerer recibido (no en el global) para poder crear
// varias instancias en tests.
type Metrics struct {
	RecordsCreated     *prometheus.CounterVec
	RecordsDeleted     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	AdoptionsCreated   prometheus.Counter
	StatusChanges      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawfect_records_created_total",
			Help: "Records created, by entity kind",
		}, []string{"kind"}),
		RecordsDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawfect_records_deleted_total",
			Help: "Records deleted (rows affected), by entity kind",
		}, []string{"kind"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawfect_validation_failures_total",
			Help: "Rejected inputs, by entity kind and reason",
		}, []string{"kind", "reason"}),
		AdoptionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "pawfect_adoptions_created_total",
			Help: "Adoptions created in Pending state",
		}),
		StatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawfect_adoption_status_changes_total",
			Help: "Adoption status changes, by target status",
		}, []string{"status"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawfect_http_requests_total",
			Help: "HTTP requests, by method, route and status code",
		}, []string{"method", "route", "code"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pawfect_http_request_duration_seconds",
			Help:    "HTTP request duration, by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncCreated(kind string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) AddDeleted(kind string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsDeleted.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) IncValidationFailure(kind, reason string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) IncAdoptionCreated() {
	if m == nil {
		return
	}
	m.AdoptionsCreated.Inc()
}

func (m *Metrics) IncStatusChange(status string) {
	if m == nil {
		return
	}
	m.StatusChanges.WithLabelValues(status).Inc()
}

// ObserveHTTP registra un request terminado. Llamar con time.Now() tomado al inicio.
func (m *Metrics) ObserveHTTP(method, route, code string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, code).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
