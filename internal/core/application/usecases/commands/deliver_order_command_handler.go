package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// DeliverOrderCommandHandler completes an assigned order.
// The driver stays referenced by the order for audit but returns to the
// available pool, and the delivery record flips to "delivered", all in the
// same transaction. Delivered is a final status; no transition leaves it.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the deliver command.
// Transitions the order from "assigned" to "delivered", frees the driver, and
// marks the delivery record delivered. Emits an "order_delivered" event after
// commit and returns the updated order.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	deliveredOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	driverID, err := deliveredOrder.Deliver()
	if err != nil {
		return nil, err
	}

	var freedDriver string
	if driverID != nil {
		freedDriver = driverID.String()

		driverRepo := uow.DriverRepository()

		assignedDriver, err := driverRepo.GetForUpdate(ctx, *driverID)
		if err != nil {
			return nil, err
		}

		assignedDriver.MarkAvailable()
		if err = driverRepo.Update(ctx, assignedDriver); err != nil {
			return nil, err
		}
	}

	deliveryRepo := uow.DeliveryRepository()

	shipment, err := deliveryRepo.Get(ctx, deliveredOrder.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No record to close out; tolerated so a delivery is never blocked
		// by a missing derived row.
	case err != nil:
		return nil, err
	default:
		shipment.MarkDelivered()
		if err = deliveryRepo.Upsert(ctx, shipment); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewEvent(
		ports.EventOrderDelivered, deliveredOrder.ID().String(), freedDriver, time.Now().UTC()))

	return deliveredOrder, nil
}
