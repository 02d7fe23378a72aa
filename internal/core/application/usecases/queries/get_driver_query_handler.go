package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves one driver row by identifier.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver queries.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when no driver carries the
// requested identifier.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverQueryResponse{}, err
	}

	var driverResp GetDriverQueryResponse
	var email, phone, licenseNumber sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			name,
			email,
			phone,
			license_number,
			available,
			created_at
		FROM drivers
		WHERE driver_id = ?
	`, query.DriverID().String()).Row()

	err := row.Scan(
		&driverResp.DriverID,
		&driverResp.Name,
		&email,
		&phone,
		&licenseNumber,
		&driverResp.Available,
		&driverResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"driver_id", query.DriverID().String(), err)
	}
	if err != nil {
		return GetDriverQueryResponse{}, err
	}

	if email.Valid {
		driverResp.Email = &email.String
	}
	if phone.Valid {
		driverResp.Phone = &phone.String
	}
	if licenseNumber.Valid {
		driverResp.LicenseNumber = &licenseNumber.String
	}

	return driverResp, nil
}
