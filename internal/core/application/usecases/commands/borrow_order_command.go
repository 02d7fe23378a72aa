package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrBorrowOrderCommandIsNotConstructed = errors.New(
	"BorrowOrderCommand must be created via NewBorrowOrderCommand constructor",
)

// BorrowOrderCommand represents a request to claim a pending order for
// processing. Borrowing reserves the order for one operator so that two
// operators cannot race to assign a driver to it.
type BorrowOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewBorrowOrderCommand creates a command to borrow the identified order.
func NewBorrowOrderCommand(orderID kernel.OrderID) (BorrowOrderCommand, error) {
	borrowCommand := BorrowOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := borrowCommand.setOrderID(orderID); err != nil {
		return BorrowOrderCommand{}, err
	}

	return borrowCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BorrowOrderCommand) Validate() error {
	return c.guard.Validate(ErrBorrowOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to borrow.
func (c BorrowOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *BorrowOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
