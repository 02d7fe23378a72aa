package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct warehouse workflow.
//
// State transitions:
//
//	Pending ──> Borrowed ──> Assigned ──> Delivered
//	   ^            │            │
//	   └────────────┴────────────┘
//	          (return)
//
// Delivered is terminal. Return is the universal escape valve from either
// in-progress state back to Pending; it surfaces to observers as the
// "order_returned" event but is not itself a persisted status.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Pending orders are waiting to be claimed by a warehouse operator.
	Pending

	// Borrowed indicates a warehouse operator has claimed the order for
	// processing. A borrowed order has no driver yet; the claim prevents two
	// operators from racing to assign the same order to different drivers.
	Borrowed

	// Assigned indicates a driver has been bound to the order.
	// The driver stays unavailable while the order is in this status.
	Assigned

	// Delivered indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations, matching the persisted form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Borrowed:  "borrowed",
		Assigned:  "assigned",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Borrowed:  "borrowed",
		Assigned:  "assigned",
		Delivered: "delivered",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for anything outside the valid status set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Borrowed, Assigned, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Borrow transitions the status to Borrowed.
//
// Valid transitions:
//   - Pending -> Borrowed
//
// Returns (0, error wrapping errs.ErrInvalidTransition) from any other status.
func (s Status) Borrow() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionErrorWithCause("borrow",
			fmt.Errorf("%s is not a valid status to borrow", s))
	}
	return Borrowed, nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Borrowed -> Assigned
//
// Assignment from Pending is invalid: an order must be claimed by an operator
// before a driver is committed. Returns (0, error wrapping
// errs.ErrInvalidTransition) from any other status.
func (s Status) Assign() (Status, error) {
	if s != Borrowed {
		return 0, errs.NewInvalidTransitionErrorWithCause("assign",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// Return transitions the status back to Pending.
//
// Valid transitions:
//   - Borrowed -> Pending
//   - Assigned -> Pending
//
// Returns (0, error wrapping errs.ErrInvalidTransition) from any other status.
func (s Status) Return() (Status, error) {
	if s != Borrowed && s != Assigned {
		return 0, errs.NewInvalidTransitionErrorWithCause("return",
			fmt.Errorf("%s is not a valid status to return", s))
	}
	return Pending, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Assigned -> Delivered
//
// Delivered is a final state with no further transitions possible.
// Returns (0, error wrapping errs.ErrInvalidTransition) from any other status.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionErrorWithCause("deliver",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver attachment.
//
// Rules:
//   - Pending and Borrowed orders must not have a driver
//   - Assigned orders must have a driver
//   - Delivered orders retain their last driver for audit
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}

	if !hasDriver && (s == Assigned || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}

	return nil
}
