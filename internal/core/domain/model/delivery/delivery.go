// Package delivery contains the Delivery record derived from order
// assignment. A record exists only while an order has (or had) a committed
// driver: it is created on assignment as "on the way", removed when the
// order is returned, and marked "delivered" on delivery.
package delivery

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Delivery statuses. The record has no state machine of its own; it mirrors
// the assigned/delivered half of the order lifecycle.
const (
	StatusOnTheWay  = "on the way"
	StatusDelivered = "delivered"
)

// ErrDeliveryIsNotConstructed is returned when using a Delivery that was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the shipment record handed to the driver-facing side of the
// system once a driver is committed to an order.
type Delivery struct {
	orderID  kernel.OrderID
	status   string
	address  string
	driverID kernel.DriverID
	guard    guard.ConstructorGuard
}

// NewDelivery creates a Delivery in "on the way" status for a freshly
// assigned order. The address is the order's delivery location.
func NewDelivery(orderID kernel.OrderID, address string, driverID kernel.DriverID) (*Delivery, error) {
	d := &Delivery{
		status: StatusOnTheWay,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery record from persistent storage.
func RestoreDelivery(orderID kernel.OrderID, status string, address string, driverID kernel.DriverID) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setStatus(status),
		d.setAddress(address),
		d.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// OrderID returns the identifier of the order this record belongs to.
func (d *Delivery) OrderID() kernel.OrderID {
	return d.orderID
}

// Status returns the delivery status string.
func (d *Delivery) Status() string {
	return d.status
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// DriverID returns the driver carrying the delivery.
func (d *Delivery) DriverID() kernel.DriverID {
	return d.driverID
}

// MarkDelivered flips the record to "delivered". Idempotent.
func (d *Delivery) MarkDelivered() {
	d.status = StatusDelivered
}

func (d *Delivery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setStatus(status string) error {
	if status != StatusOnTheWay && status != StatusDelivered {
		return errs.NewValueIsInvalidError("delivery_status")
	}
	d.status = status
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}
