package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves the delivery record for an order.
// A record exists only between assignment and return; delivered orders keep
// theirs with status "delivered".
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query to retrieve the delivery record of the
// identified order.
func NewGetDeliveryQuery(orderID kernel.OrderID) (GetDeliveryQuery, error) {
	deliveryQuery := GetDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryQuery.setOrderID(orderID); err != nil {
		return GetDeliveryQuery{}, err
	}

	return deliveryQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose record to retrieve.
func (q GetDeliveryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetDeliveryQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetDeliveryQueryResponse is the flat read model of a delivery record.
type GetDeliveryQueryResponse struct {
	OrderID        string
	DeliveryStatus string
	Address        string
	DriverID       string
}
