package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConversationMetrics exposes counters/gauges for the dialogue engine and
// the webchat boundary.
type ConversationMetrics struct {
	turnsTotal         *prometheus.CounterVec
	messagesTotal      *prometheus.CounterVec
	bookingsTotal      *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	fallbackTotal      prometheus.Counter
	activeSessions     prometheus.Gauge
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorship",
			Subsystem: "conversation",
			Name:      "turns_total",
			Help:      "User turns processed, labelled by the step that handled them",
		}, []string{"step"}),
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorship",
			Subsystem: "conversation",
			Name:      "messages_total",
			Help:      "Messages exchanged, labelled by sender",
		}, []string{"sender"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorship",
			Subsystem: "conversation",
			Name:      "bookings_total",
			Help:      "Booking flow outcomes",
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorship",
			Subsystem: "conversation",
			Name:      "validation_failures_total",
			Help:      "Rejected booking field inputs",
		}, []string{"field"}),
		fallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorship",
			Subsystem: "conversation",
			Name:      "fallback_total",
			Help:      "Inputs that fell through to the generic response",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mentorship",
			Subsystem: "webchat",
			Name:      "active_sessions",
			Help:      "Currently connected widget sessions",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.messagesTotal, m.bookingsTotal,
		m.validationFailures, m.fallbackTotal, m.activeSessions)
	return m
}

func (m *ConversationMetrics) ObserveTurn(step string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(step).Inc()
}

func (m *ConversationMetrics) ObserveMessage(sender string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(sender).Inc()
}

func (m *ConversationMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *ConversationMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

func (m *ConversationMetrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.fallbackTotal.Inc()
}

func (m *ConversationMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *ConversationMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
