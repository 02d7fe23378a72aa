package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// ReturnOrderCommandHandler diverts a borrowed or assigned order back to the
// pending pool. If the order had a driver, the driver is released back to
// availability and the delivery record is removed, in the same transaction
// that resets the order.
type ReturnOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewReturnOrderCommandHandler creates a handler for return operations.
func NewReturnOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the return command.
// Resets the order to "pending" with driver reference and borrow/assign
// timestamps cleared. A previously attached driver becomes available again
// and its delivery record is deleted. Emits an "order_returned" event after
// commit and returns the updated order.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) (*order.Order, error) {
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

	returnedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	releasedDriverID, err := returnedOrder.Return()
	if err != nil {
		return nil, err
	}

	var releasedDriver string
	if releasedDriverID != nil {
		releasedDriver = releasedDriverID.String()

		driverRepo := uow.DriverRepository()

		freedDriver, err := driverRepo.GetForUpdate(ctx, *releasedDriverID)
		if err != nil {
			return nil, err
		}

		freedDriver.MarkAvailable()
		if err = driverRepo.Update(ctx, freedDriver); err != nil {
			return nil, err
		}

		if err = uow.DeliveryRepository().Delete(ctx, returnedOrder.ID()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, returnedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewEvent(
		ports.EventOrderReturned, returnedOrder.ID().String(), releasedDriver, time.Now().UTC()))

	return returnedOrder, nil
}
