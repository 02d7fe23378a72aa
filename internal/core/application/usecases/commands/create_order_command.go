package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired       = errors.New("client name is required")
	ErrPickupLocationIsRequired   = errors.New("pickup location is required")
	ErrDeliveryLocationIsRequired = errors.New("delivery location is required")
)

// CreateOrderCommand represents a request to register a new order in the
// warehouse. The order identifier is assigned by the caller and must be
// unique; descriptive fields travel with the order but never influence the
// state machine.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("ORD-1001")
//	cmd, err := NewCreateOrderCommand(orderID, "Acme Corp", "Dock 4", "12 Elm St", "fragile")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.OrderID
	clientName       string
	pickupLocation   string
	deliveryLocation string
	packageInfo      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and the client name and both
// locations are present. The package description is optional.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	clientName string,
	pickupLocation string,
	deliveryLocation string,
	packageInfo string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		packageInfo: packageInfo,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientName(clientName),
		orderCommand.setPickupLocation(pickupLocation),
		orderCommand.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-assigned identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ClientName returns the name of the client placing the order.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// PickupLocation returns where the package is collected.
func (c CreateOrderCommand) PickupLocation() string {
	return c.pickupLocation
}

// DeliveryLocation returns where the package is delivered.
func (c CreateOrderCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

// PackageInfo returns the free-form package description, possibly empty.
func (c CreateOrderCommand) PackageInfo() string {
	return c.packageInfo
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return ErrPickupLocationIsRequired
	}

	c.pickupLocation = pickupLocation
	return nil
}

func (c *CreateOrderCommand) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return ErrDeliveryLocationIsRequired
	}

	c.deliveryLocation = deliveryLocation
	return nil
}
