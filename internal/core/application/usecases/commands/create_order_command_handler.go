package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders enter the warehouse in "pending" status with no driver attached.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, "Acme Corp", "Dock 4", "12 Elm St", "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is pending and ready to be borrowed
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the post-commit notification.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Persists the new order in "pending" status; a duplicate order ID surfaces
// as an error wrapping errs.ErrObjectAlreadyExists. Emits an "order_created"
// event after the transaction commits and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientName(),
		cmd.PickupLocation(),
		cmd.DeliveryLocation(),
		cmd.PackageInfo(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewEvent(ports.EventOrderCreated, newOrder.ID().String(), "", now))

	return newOrder, nil
}
