package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to bind a driver to a borrowed
// order. The driver must be available at execution time; the handler verifies
// this inside the transaction, not here.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign the identified driver to
// the identified order.
func NewAssignDriverCommand(orderID kernel.OrderID, driverID kernel.DriverID) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDriverCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// DriverID returns the identifier of the driver to bind.
func (c AssignDriverCommand) DriverID() kernel.DriverID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
