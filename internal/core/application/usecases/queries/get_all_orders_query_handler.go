package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all order rows from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// driver name comes from a left join so unassigned orders still appear.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY o.created_at DESC, o.order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var driverID, driverName sql.NullString
		var borrowedAt, assignedAt sql.NullTime

		err = rows.Scan(
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
		if err != nil {
			return nil, err
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

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
