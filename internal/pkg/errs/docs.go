// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package models the error kinds surfaced by the core:
//   - ObjectNotFoundError: a referenced order or driver does not exist
//   - ObjectAlreadyExistsError: a uniqueness conflict on create
//   - InvalidTransitionError: a lifecycle precondition does not hold
//   - ValueIsInvalidError / ValueIsRequiredError: malformed input caught
//     before the state machine is touched
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter classifies errors exclusively via errors.Is against the
// sentinels, which keeps the transport mapping independent of the concrete
// error structs.
package errs
