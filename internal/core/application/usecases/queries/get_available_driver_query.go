package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetAvailableDriverQueryIsNotConstructed = errors.New(
	"GetAvailableDriverQuery must be created via NewGetAvailableDriverQuery constructor",
)

// GetAvailableDriverQuery picks one driver that is free to take an
// assignment. The pick scans drivers in signup order, so the same fleet state
// always yields the same driver; callers must not rely on that ordering.
type GetAvailableDriverQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriverQuery creates a query to pick an available driver.
func NewGetAvailableDriverQuery() GetAvailableDriverQuery {
	return GetAvailableDriverQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriverQueryIsNotConstructed)
}

// GetAvailableDriverQueryResponse identifies the picked driver.
type GetAvailableDriverQueryResponse struct {
	DriverID string
	Name     string
}
