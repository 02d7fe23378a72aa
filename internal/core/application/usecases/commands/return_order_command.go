package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents a request to divert a borrowed or assigned
// order back to the pending pool, releasing its driver if one was attached.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return the identified order.
func NewReturnOrderCommand(orderID kernel.OrderID) (ReturnOrderCommand, error) {
	returnCommand := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := returnCommand.setOrderID(orderID); err != nil {
		return ReturnOrderCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to return.
func (c ReturnOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
