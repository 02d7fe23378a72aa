package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves all driver rows from the database.
// Results come back in signup order, the same order the picker scans in.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver listing queries.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

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
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverResp GetAllDriversQueryResponse
		var email, phone, licenseNumber sql.NullString

		err = rows.Scan(
			&driverResp.DriverID,
			&driverResp.Name,
			&email,
			&phone,
			&licenseNumber,
			&driverResp.Available,
			&driverResp.CreatedAt,
		)
		if err != nil {
			return nil, err
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

		drivers = append(drivers, driverResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
