package driver

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Driver is the aggregate root for a delivery driver and the unit the
// availability registry operates on.
//
// A driver carries a single binary availability flag. The registry invariant
// couples it to the order lifecycle: a driver with available=false is
// referenced by exactly one Assigned order, and a driver with available=true
// by none. The Driver aggregate itself only owns the flag; the coupling is
// enforced by the lifecycle manager, which flips the flag in the same
// transaction as the order transition.
//
// Contact fields (name, email, phone, license number) are descriptive and
// never consulted by the state machine; email uniqueness is enforced by
// storage.
type Driver struct {
	// id uniquely identifies the driver, server-generated at signup
	id kernel.DriverID

	// name is the human-readable name of the driver
	name string

	// email, phone, and licenseNumber are contact fields; email is unique
	// when present
	email         string
	phone         string
	licenseNumber string

	// available reports whether the driver can take a new assignment
	available bool

	// createdAt records signup time; pickAnyAvailable scans in this order
	createdAt time.Time

	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new available Driver.
//
// Parameters:
//   - id: server-generated identifier (must be valid)
//   - name: human-readable name (required)
//   - email, phone, licenseNumber: contact fields; may be empty for drivers
//     registered through the minimal registration path
//   - createdAt: signup timestamp
//
// New drivers always start available.
func NewDriver(
	id kernel.DriverID,
	name string,
	email string,
	phone string,
	licenseNumber string,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		email:         email,
		phone:         phone,
		licenseNumber: licenseNumber,
		available:     true,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its current availability flag.
func RestoreDriver(
	id kernel.DriverID,
	name string,
	email string,
	phone string,
	licenseNumber string,
	available bool,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		email:         email,
		phone:         phone,
		licenseNumber: licenseNumber,
		available:     available,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's identifier.
func (d *Driver) ID() kernel.DriverID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's email, empty if never provided.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's phone number, empty if never provided.
func (d *Driver) Phone() string {
	return d.phone
}

// LicenseNumber returns the driver's license number, empty if never provided.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// IsAvailable reports whether the driver can take a new assignment.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// CreatedAt returns the signup timestamp.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// MarkUnavailable flags the driver as busy with an assignment.
// Idempotent: marking an already-unavailable driver is a no-op, not an error.
// The lifecycle manager calls this when binding the driver to an order and is
// responsible for having verified availability first.
func (d *Driver) MarkUnavailable() {
	d.available = false
}

// MarkAvailable flags the driver as free for new assignments.
// Idempotent: marking an already-available driver is a no-op, not an error.
// Called when an assigned order is delivered or returned.
func (d *Driver) MarkAvailable() {
	d.available = true
}

// setID validates and sets the driver's identifier.
func (d *Driver) setID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setName validates and sets the driver's name.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
