package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// AssignDriverCommandHandler binds an available driver to a borrowed order.
//
// This is the operation the cross-entity invariant hinges on: the order gains
// a driver reference, the driver loses availability, and a delivery record
// appears, all in one transaction. Both rows are read with row locks so two
// concurrent assigns serialize; the loser observes the changed state and
// receives an invalid transition error.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAssignDriverCommand(orderID, driverID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    log.Println("order already taken or driver busy")
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// Requires a UoWFactory spanning orders, drivers, and delivery records.
func NewAssignDriverCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// The order must be "borrowed" and the driver available; on success the order
// becomes "assigned", the driver becomes unavailable, and a delivery record in
// "on the way" status is written. Emits a "driver_assigned" event after commit
// and returns the updated order.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
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
	driverRepo := uow.DriverRepository()

	// Lock the order row first, the driver row second. Every handler that
	// touches both aggregates locks in this sequence.
	assignedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	assignedDriver, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if !assignedDriver.IsAvailable() {
		return nil, errs.NewInvalidTransitionErrorWithCause("assign",
			fmt.Errorf("driver %s is not available", assignedDriver.ID()))
	}

	now := time.Now().UTC()
	if err = assignedOrder.Assign(assignedDriver.ID(), now); err != nil {
		return nil, err
	}

	assignedDriver.MarkUnavailable()

	shipment, err := delivery.NewDelivery(assignedOrder.ID(), assignedOrder.DeliveryLocation(), assignedDriver.ID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Upsert(ctx, shipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewEvent(
		ports.EventDriverAssigned, assignedOrder.ID().String(), assignedDriver.ID().String(), now))

	return assignedOrder, nil
}
