package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single driver by its identifier.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query to retrieve the identified driver.
func NewGetDriverQuery(driverID kernel.DriverID) (GetDriverQuery, error) {
	driverQuery := GetDriverQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverQuery.setDriverID(driverID); err != nil {
		return GetDriverQuery{}, err
	}

	return driverQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver to retrieve.
func (q GetDriverQuery) DriverID() kernel.DriverID {
	return q.driverID
}

func (q *GetDriverQuery) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}

// GetDriverQueryResponse is the flat read model of a single driver.
type GetDriverQueryResponse struct {
	DriverID      string
	Name          string
	Email         *string
	Phone         *string
	LicenseNumber *string
	Available     bool
	CreatedAt     time.Time
}
