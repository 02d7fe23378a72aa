package order

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// defaultPackageInfo is used when the creator supplies no package description.
const defaultPackageInfo = "Standard Package"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrClientNameIsRequired is returned when creating an order without a client name.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("client_name")
	// ErrPickupLocationIsRequired is returned when creating an order without a pickup location.
	ErrPickupLocationIsRequired = errs.NewValueIsRequiredError("pickup_location")
	// ErrDeliveryLocationIsRequired is returned when creating an order without a delivery location.
	ErrDeliveryLocationIsRequired = errs.NewValueIsRequiredError("delivery_location")
)

// Order is the aggregate root for a single delivery request moving through
// the warehouse: Pending -> Borrowed -> Assigned -> Delivered, or diverted
// back to Pending via Return.
//
// Order maintains these invariants:
//   - the identifier is assigned by the creator and immutable
//   - status transitions follow the state machine in Status
//   - a driver is attached if and only if the order is Assigned
//     (Delivered retains the last driver for audit)
//   - borrowed_at / assigned_at are set when the corresponding transition
//     occurs and cleared only by Return
//
// All fields are private; state changes go through validated methods, and
// instances come only from NewOrder or RestoreOrder.
type Order struct {
	// id is the creator-assigned, immutable order identifier
	id kernel.OrderID

	// clientName, pickupLocation, deliveryLocation, and packageInfo are
	// descriptive fields, opaque to the state machine
	clientName       string
	pickupLocation   string
	deliveryLocation string
	packageInfo      string

	// status is the current state in the order lifecycle
	status Status

	// driverID is the attached driver (nil unless Assigned or Delivered)
	driverID *kernel.DriverID

	// createdAt is set once at creation
	createdAt time.Time

	// borrowedAt and assignedAt track when the order entered the
	// corresponding states; both are cleared by Return
	borrowedAt *time.Time
	assignedAt *time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: creator-assigned identifier (must be a valid OrderID)
//   - clientName: name of the client placing the order (required)
//   - pickupLocation: where the package is collected (required)
//   - deliveryLocation: where the package is delivered (required)
//   - packageInfo: free-form package description; defaults to
//     "Standard Package" when empty
//   - createdAt: creation timestamp, recorded once
//
// Returns the order, or a validation error joining every failed check.
func NewOrder(
	id kernel.OrderID,
	clientName string,
	pickupLocation string,
	deliveryLocation string,
	packageInfo string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if packageInfo == "" {
		packageInfo = defaultPackageInfo
	}
	o.packageInfo = packageInfo

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status together with the persisted
// driver attachment and timestamps, and cross-validates them so a corrupted
// row cannot produce an aggregate that violates the driver/status invariant.
func RestoreOrder(
	id kernel.OrderID,
	clientName string,
	pickupLocation string,
	deliveryLocation string,
	packageInfo string,
	status Status,
	driverID *kernel.DriverID,
	createdAt time.Time,
	borrowedAt *time.Time,
	assignedAt *time.Time,
) (*Order, error) {
	o := &Order{
		packageInfo: packageInfo,
		createdAt:   createdAt,
		borrowedAt:  borrowedAt,
		assignedAt:  assignedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}

	if err := status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or directly instantiated orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's immutable identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ClientName returns the name of the client that placed the order.
func (o *Order) ClientName() string {
	return o.clientName
}

// PickupLocation returns the pickup location description.
func (o *Order) PickupLocation() string {
	return o.pickupLocation
}

// DeliveryLocation returns the delivery location description.
func (o *Order) DeliveryLocation() string {
	return o.deliveryLocation
}

// PackageInfo returns the package description.
func (o *Order) PackageInfo() string {
	return o.packageInfo
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the attached driver's ID, or nil when no driver is attached.
func (o *Order) Driver() *kernel.DriverID {
	return o.driverID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// BorrowedAt returns when the order was borrowed, or nil.
func (o *Order) BorrowedAt() *time.Time {
	return o.borrowedAt
}

// AssignedAt returns when a driver was assigned, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// Borrow claims the order for processing by a warehouse operator.
//
// The order must be Pending. On success the status becomes Borrowed and
// borrowedAt records the claim time. The claim separates "order is being
// handled" from "order has a driver": a borrowed order cannot be borrowed
// again, so two operators cannot race to assign it.
func (o *Order) Borrow(at time.Time) error {
	newStatus, err := o.status.Borrow()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.borrowedAt = &at
	return nil
}

// Assign binds a driver to a borrowed order.
//
// The order must be Borrowed; driver availability is the caller's
// responsibility (the lifecycle manager checks it against the registry inside
// the same transaction). On success the status becomes Assigned, the driver
// is attached, and assignedAt records the assignment time.
func (o *Order) Assign(driverID kernel.DriverID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.assignedAt = &at
	return nil
}

// Return diverts a borrowed or assigned order back to Pending.
//
// The attached driver, if any, is detached and returned to the caller so the
// lifecycle manager can restore that driver's availability in the same
// transaction. driverID, borrowedAt, and assignedAt are all cleared: a
// returned order is indistinguishable from a freshly created one apart from
// createdAt.
func (o *Order) Return() (*kernel.DriverID, error) {
	newStatus, err := o.status.Return()
	if err != nil {
		return nil, err
	}

	released := o.driverID
	o.status = newStatus
	o.driverID = nil
	o.borrowedAt = nil
	o.assignedAt = nil
	return released, nil
}

// Deliver marks an assigned order as delivered.
//
// The order must be Assigned. The driver stays attached for audit even though
// the lifecycle manager restores the driver's availability; Delivered is a
// final state.
func (o *Order) Deliver() (*kernel.DriverID, error) {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	return o.driverID, nil
}

// setID validates and sets the order's identifier.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientName validates and sets the client name.
func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}
	o.clientName = clientName
	return nil
}

// setPickupLocation validates and sets the pickup location.
func (o *Order) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return ErrPickupLocationIsRequired
	}
	o.pickupLocation = pickupLocation
	return nil
}

// setDeliveryLocation validates and sets the delivery location.
func (o *Order) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return ErrDeliveryLocationIsRequired
	}
	o.deliveryLocation = deliveryLocation
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
