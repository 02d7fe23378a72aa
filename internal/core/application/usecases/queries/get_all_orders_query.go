// Package queries contains the read side of the CQRS split. Query handlers
// bypass the aggregates and repositories and read directly from the database,
// returning flat read models shaped for serialization.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the warehouse, newest first,
// with the assigned driver's name joined in when one is attached.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders in the warehouse\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the flat read model of one order row.
// Pointer fields are nil for orders that never reached the corresponding
// transition or had it cleared by a return.
type GetAllOrdersQueryResponse struct {
	OrderID          string
	ClientName       string
	PickupLocation   string
	DeliveryLocation string
	PackageInfo      string
	Status           string
	DriverID         *string
	DriverName       *string
	CreatedAt        time.Time
	BorrowedAt       *time.Time
	AssignedAt       *time.Time
}
