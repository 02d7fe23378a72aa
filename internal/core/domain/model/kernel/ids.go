package kernel

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// driverIDPrefix is prepended to every generated driver identifier.
const driverIDPrefix = "DRV"

var (
	// ErrOrderIDIsNotConstructed indicates an OrderID that was not created
	// through NewOrderID. The zero value is invalid.
	ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

	// ErrDriverIDIsNotConstructed indicates a DriverID that was not created
	// through NewDriverID or DriverIDFromString. The zero value is invalid.
	ErrDriverIDIsNotConstructed = errs.NewValueIsRequiredError("DriverID must be created via NewDriverID or DriverIDFromString")
)

// OrderID is a value object wrapping the opaque order identifier assigned by
// the order-placement collaborator. It is immutable: once an order is created
// its identifier never changes.
//
// The zero value of OrderID is invalid and must be constructed via NewOrderID.
//
// Example usage:
//
//	id, err := kernel.NewOrderID("ORD-1")
//	if err != nil {
//	    // handle validation error
//	}
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string form.
// The identifier is opaque to the core; the only requirements are that it is
// non-empty and carries no surrounding whitespace.
func NewOrderID(value string) (OrderID, error) {
	if strings.TrimSpace(value) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order_id")
	}
	if value != strings.TrimSpace(value) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%q has surrounding whitespace", value))
	}

	return OrderID{value: value}, nil
}

// Validate returns nil if the OrderID was constructed via NewOrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the raw identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// DriverID is a value object wrapping a driver identifier. Identifiers are
// server-generated at signup in the form "DRV" followed by eight upper-case
// hex characters, e.g. "DRV1A2B3C4D".
//
// The zero value of DriverID is invalid and must be constructed via
// NewDriverID or DriverIDFromString.
type DriverID struct {
	value string
}

// NewDriverID generates a fresh driver identifier.
// Uniqueness comes from the random UUID the suffix is taken from; the drivers
// table additionally enforces it with a unique constraint.
//
// Example:
//
//	id := kernel.NewDriverID()
//	fmt.Println(id.String()) // e.g. "DRV9F86D081"
func NewDriverID() DriverID {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return DriverID{value: driverIDPrefix + suffix}
}

// DriverIDFromString parses a DriverID from its string form.
// Used when reconstructing drivers from persistence or when parsing
// identifiers supplied by the request-handling collaborator.
func DriverIDFromString(value string) (DriverID, error) {
	if strings.TrimSpace(value) == "" {
		return DriverID{}, errs.NewValueIsRequiredError("driver_id")
	}
	if value != strings.TrimSpace(value) {
		return DriverID{}, errs.NewValueIsInvalidErrorWithCause("driver_id",
			fmt.Errorf("%q has surrounding whitespace", value))
	}

	return DriverID{value: value}, nil
}

// Validate returns nil if the DriverID was constructed through a factory.
func (id DriverID) Validate() error {
	if id.value == "" {
		return ErrDriverIDIsNotConstructed
	}
	return nil
}

// String returns the raw identifier.
func (id DriverID) String() string {
	return id.value
}

// IsEqual compares two driver identifiers by value.
func (id DriverID) IsEqual(other DriverID) bool {
	return id.value == other.value
}
