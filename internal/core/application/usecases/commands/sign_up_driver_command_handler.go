package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/driver"
	"warehouse/internal/core/domain/model/kernel"
)

// SignUpDriverCommandHandler registers a new driver through the full signup
// flow. The driver identifier is generated here, not supplied by the caller,
// and new drivers always start available.
type SignUpDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSignUpDriverCommandHandler creates a handler for driver signup.
func NewSignUpDriverCommandHandler(uowFactory DriverUoWFactory) SignUpDriverCommandHandler {
	return SignUpDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command.
// Generates a fresh driver identifier and persists the driver as available.
// A duplicate email surfaces as an error wrapping errs.ErrObjectAlreadyExists.
// Returns the created driver.
func (h SignUpDriverCommandHandler) Handle(ctx context.Context, cmd SignUpDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDriver, err := driver.NewDriver(
		kernel.NewDriverID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.LicenseNumber(),
		time.Now().UTC(),
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

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDriver, nil
}
