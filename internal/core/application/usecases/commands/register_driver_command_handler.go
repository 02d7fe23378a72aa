package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler registers a driver under a caller-provided
// identifier with no contact details. New drivers start available.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for minimal driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// A duplicate driver identifier surfaces as an error wrapping
// errs.ErrObjectAlreadyExists. Returns the created driver.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), "", "", "", time.Now().UTC())
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
