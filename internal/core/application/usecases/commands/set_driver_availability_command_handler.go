package commands

import (
	"context"

	"warehouse/internal/core/domain/model/driver"
)

// SetDriverAvailabilityCommandHandler applies a manual availability override.
// Setting the flag to its current value is a no-op, not an error.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for availability overrides.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability override.
// The driver row is read with a row lock so the override serializes with any
// in-flight assignment touching the same driver. Returns the updated driver.
func (h SetDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDriverAvailabilityCommand,
) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	updatedDriver, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if cmd.Available() {
		updatedDriver.MarkAvailable()
	} else {
		updatedDriver.MarkUnavailable()
	}

	if err = driverRepo.Update(ctx, updatedDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updatedDriver, nil
}
