package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// BorrowOrderCommandHandler handles claiming a pending order for processing.
// The order row is read with a row lock so that concurrent borrows of the
// same order serialize: the first commits, the second observes "borrowed"
// and fails with an invalid transition error.
type BorrowOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewBorrowOrderCommandHandler creates a handler for borrow operations.
func NewBorrowOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) BorrowOrderCommandHandler {
	return BorrowOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the borrow command.
// Transitions the order from "pending" to "borrowed" and records the borrow
// time. Emits an "order_borrowed" event after commit and returns the updated
// order.
func (h BorrowOrderCommandHandler) Handle(ctx context.Context, cmd BorrowOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	borrowedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = borrowedOrder.Borrow(now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, borrowedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewEvent(ports.EventOrderBorrowed, borrowedOrder.ID().String(), "", now))

	return borrowedOrder, nil
}
