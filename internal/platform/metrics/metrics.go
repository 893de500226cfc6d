package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dvt"

// Records agrupa las métricas del módulo de historia clínica.
// Los métodos son nil-safe: un *Records nil no registra nada.
type Records struct {
	Created     *prometheus.CounterVec
	Corrections *prometheus.CounterVec
	Transitions *prometheus.CounterVec
}

// NewRecords crea y registra las métricas de registros en reg.
// Con reg nil las métricas existen pero no se exponen.
func NewRecords(reg prometheus.Registerer) *Records {
	m := &Records{
		Created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Medical records created by type",
		}, []string{"type"}),

		Corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_corrections_total",
			Help:      "Correction attempts by type and outcome",
		}, []string{"type", "outcome"}), // outcome: accepted, no_changes, rejected

		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_transitions_total",
			Help:      "Status actions by type, action and outcome",
		}, []string{"type", "action", "outcome"}), // outcome: applied, invalid, unsupported, conflict
	}

	if reg != nil {
		reg.MustRegister(m.Created, m.Corrections, m.Transitions)
	}
	return m
}

func (m *Records) IncCreated(kind string) {
	if m != nil {
		m.Created.WithLabelValues(kind).Inc()
	}
}

func (m *Records) IncCorrection(kind, outcome string) {
	if m != nil {
		m.Corrections.WithLabelValues(kind, outcome).Inc()
	}
}

func (m *Records) IncTransition(kind, action, outcome string) {
	if m != nil {
		m.Transitions.WithLabelValues(kind, action, outcome).Inc()
	}
}

// HTTP mide latencia de requests por ruta (patrón chi, no path crudo).
type HTTP struct {
	RequestDuration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}

	if reg != nil {
		reg.MustRegister(m.RequestDuration)
	}
	return m
}

func (m *HTTP) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
