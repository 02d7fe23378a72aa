package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every registered driver in signup order.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all drivers.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is the flat read model of one driver row.
// Contact fields are nil for drivers registered through the minimal path.
type GetAllDriversQueryResponse struct {
	DriverID      string
	Name          string
	Email         *string
	Phone         *string
	LicenseNumber *string
	Available     bool
	CreatedAt     time.Time
}
