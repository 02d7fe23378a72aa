package ports

import (
	"context"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
// Records are derived state: the lifecycle manager creates one on assignment,
// removes it on return, and marks it delivered on delivery, always inside the
// same transaction as the order transition.
type DeliveryRepository interface {
	// Upsert inserts the record or replaces an existing one for the same order.
	Upsert(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves the delivery record for an order.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error)

	// Delete removes the delivery record for an order, if present.
	// Deleting an absent record is a no-op.
	Delete(ctx context.Context, orderID kernel.OrderID) error
}
