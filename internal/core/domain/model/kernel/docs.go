// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds the identifier types for the two aggregates of the
// warehouse core: OrderID (assigned by the order-placement collaborator,
// opaque to the core) and DriverID (server-generated at signup). Both are
// immutable value objects whose zero values are invalid, forcing
// construction through validated factories.
package kernel
