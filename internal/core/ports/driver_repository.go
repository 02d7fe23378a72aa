package ports

import (
	"context"

	"warehouse/internal/core/domain/model/driver"
	"warehouse/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Returns an error wrapping errs.ErrObjectAlreadyExists when the driver id
	// or email is already registered.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate by its identifier, locking the
	// underlying row for the duration of the surrounding transaction. Used by
	// every transition that flips the availability flag, so the order/driver
	// coupling can never be observed violated mid-flight.
	GetForUpdate(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)

	// GetAll retrieves all drivers ordered by signup time.
	// The signup ordering makes pickAnyAvailable deterministic.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
