package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order row by identifier.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when no order carries the
// requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var orderResp GetOrderQueryResponse
	var driverID, driverName sql.NullString
	var borrowedAt, assignedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_id,
			o.client_name,
			o.pickup_location,
			o.delivery_location,
			o.package_info,
			o.status,
			o.driver_id,
			d.name,
			o.created_at,
			o.borrowed_at,
			o.assigned_at
		FROM orders o
		LEFT JOIN drivers d ON o.driver_id = d.driver_id
		WHERE o.order_id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&orderResp.OrderID,
		&orderResp.ClientName,
		&orderResp.PickupLocation,
		&orderResp.DeliveryLocation,
		&orderResp.PackageInfo,
		&orderResp.Status,
		&driverID,
		&driverName,
		&orderResp.CreatedAt,
		&borrowedAt,
		&assignedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"order_id", query.OrderID().String(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if driverID.Valid {
		orderResp.DriverID = &driverID.String
	}
	if driverName.Valid {
		orderResp.DriverName = &driverName.String
	}
	if borrowedAt.Valid {
		orderResp.BorrowedAt = &borrowedAt.Time
	}
	if assignedAt.Valid {
		orderResp.AssignedAt = &assignedAt.Time
	}

	return orderResp, nil
}
