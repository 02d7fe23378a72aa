package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/driver"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAvailableDriverQueryHandler picks an available driver from the fleet.
// Unlike the other query handlers it rebuilds driver aggregates from the rows
// so the pick goes through the same DriverPicker the domain uses, keeping the
// selection rule in one place.
type GetAvailableDriverQueryHandler struct {
	db     *gorm.DB
	picker services.DriverPicker
}

// NewGetAvailableDriverQueryHandler creates a handler for available-driver picks.
func NewGetAvailableDriverQueryHandler(db *gorm.DB) GetAvailableDriverQueryHandler {
	return GetAvailableDriverQueryHandler{
		db:     db,
		picker: services.NewDriverPicker(),
	}
}

// Handle executes the pick.
// Returns an error wrapping errs.ErrObjectNotFound when every driver is busy
// or the fleet is empty.
func (h GetAvailableDriverQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriverQuery,
) (GetAvailableDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableDriverQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			name,
			email,
			phone,
			license_number,
			available,
			created_at
		FROM drivers
		ORDER BY created_at, driver_id
	`).Rows()
	if err != nil {
		return GetAvailableDriverQueryResponse{}, err
	}
	defer rows.Close()

	candidates := make([]*driver.Driver, 0)
	for rows.Next() {
		var id, name string
		var email, phone, licenseNumber sql.NullString
		var available bool
		var createdAt time.Time

		err = rows.Scan(&id, &name, &email, &phone, &licenseNumber, &available, &createdAt)
		if err != nil {
			return GetAvailableDriverQueryResponse{}, err
		}

		driverID, idErr := kernel.DriverIDFromString(id)
		if idErr != nil {
			return GetAvailableDriverQueryResponse{}, idErr
		}

		candidate, restoreErr := driver.RestoreDriver(
			driverID, name, email.String, phone.String, licenseNumber.String, available, createdAt)
		if restoreErr != nil {
			return GetAvailableDriverQueryResponse{}, restoreErr
		}

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return GetAvailableDriverQueryResponse{}, err
	}

	picked, err := h.picker.Pick(candidates)
	if errors.Is(err, services.ErrNoAvailableDrivers) {
		return GetAvailableDriverQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"driver", "available", err)
	}
	if err != nil {
		return GetAvailableDriverQueryResponse{}, err
	}

	return GetAvailableDriverQueryResponse{
		DriverID: picked.ID().String(),
		Name:     picked.Name(),
	}, nil
}
