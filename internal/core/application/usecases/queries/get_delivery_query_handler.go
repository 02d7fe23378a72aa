package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves one delivery record by order identifier.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery record queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when the order has no
// delivery record, which is the case for any order that is not assigned or
// delivered.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	var deliveryResp GetDeliveryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			delivery_status,
			address,
			driver_id
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&deliveryResp.OrderID,
		&deliveryResp.DeliveryStatus,
		&deliveryResp.Address,
		&deliveryResp.DriverID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"order_id", query.OrderID().String(), err)
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return deliveryResp, nil
}
