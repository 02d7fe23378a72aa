// Package metrics defines the Prometheus instruments exposed by the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrderTransitionsTotal returns a Prometheus counter vector for completed
// order lifecycle transitions, labeled by transition kind
func NewOrderTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Total number of committed order lifecycle transitions",
	}, []string{"kind"})
}

// NewNotificationsPublishedTotal returns a Prometheus counter for notification
// events written to the message bus
func NewNotificationsPublishedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_events_published_total",
		Help: "Total number of notification events written to the message bus",
	})
}

// NewNotificationsDroppedTotal returns a Prometheus counter for notification
// events dropped because the queue was full or the write failed
func NewNotificationsDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_events_dropped_total",
		Help: "Total number of notification events dropped instead of delivered",
	})
}
