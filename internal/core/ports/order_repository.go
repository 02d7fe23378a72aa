// Package ports defines the contracts between the core and its
// infrastructure collaborators: repositories, the unit of work, and the
// outbound event publisher. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns an error wrapping errs.ErrObjectAlreadyExists when the order id
	// is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its identifier, locking the
	// underlying row for the duration of the surrounding transaction. Every
	// lifecycle operation reads through this method so concurrent transitions
	// on the same order serialize instead of interleaving their
	// read-validate-write sequence.
	GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
