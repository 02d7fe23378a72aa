package ports

import (
	"context"
	"time"
)

// EventKind identifies the transition an event describes.
type EventKind string

// The five observable transitions of the order lifecycle.
const (
	EventOrderCreated   EventKind = "order_created"
	EventOrderBorrowed  EventKind = "order_borrowed"
	EventDriverAssigned EventKind = "driver_assigned"
	EventOrderReturned  EventKind = "order_returned"
	EventOrderDelivered EventKind = "order_delivered"
)

// Event is the outbound record of a completed transition.
// DriverID is empty for transitions that involve no driver.
type Event struct {
	Kind      EventKind `json:"kind"`
	OrderID   string    `json:"order_id"`
	DriverID  string    `json:"driver_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher is the outbound notification channel for completed
// transitions.
//
// Contract: Publish never blocks the caller beyond a bounded enqueue and
// never propagates a failure — delivery is at-most-once, best-effort.
// Implementations queue the event and dispatch in the background; a slow or
// unreachable channel drops events (logged, counted) rather than failing or
// delaying the transition that produced them.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// NewEvent builds an Event for the given transition.
func NewEvent(kind EventKind, orderID string, driverID string, at time.Time) Event {
	return Event{
		Kind:      kind,
		OrderID:   orderID,
		DriverID:  driverID,
		Timestamp: at,
	}
}
