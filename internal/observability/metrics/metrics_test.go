package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestConversationMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConversationMetrics(reg)
	m.ObserveTurn("menu")
	m.ObserveMessage("user")
	m.ObserveBooking("confirmed")
	m.ObserveValidationFailure("email")
	m.ObserveFallback()
	m.SessionOpened()
	m.SessionClosed()
}

func TestConversationMetricsDefaultRegistry(t *testing.T) {
	m := NewConversationMetrics(nil)
	m.ObserveTurn("greeting")
}

func TestConversationMetricsNilSafe(t *testing.T) {
	var m *ConversationMetrics
	m.ObserveTurn("menu")
	m.ObserveMessage("bot")
	m.ObserveBooking("restarted")
	m.ObserveValidationFailure("whatsapp")
	m.ObserveFallback()
	m.SessionOpened()
	m.SessionClosed()
}
