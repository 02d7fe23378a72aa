// Package services contains stateless domain services that operate across
// aggregates.
package services

import (
	"errors"

	"warehouse/internal/core/domain/model/driver"
)

// ErrNoAvailableDrivers is returned when no driver in the candidate set is
// free to take an assignment.
var ErrNoAvailableDrivers = errors.New("no available drivers")

// DriverPicker selects a driver for assignment out of a candidate set.
//
// The original system made no fairness or ordering promise for "pick any
// available driver"; this implementation picks the first available candidate
// in the order given, which combined with the repository's signup-order
// listing yields deterministic FIFO-by-signup behavior. That determinism is a
// design choice, not a contract callers may rely on.
type DriverPicker struct{}

// NewDriverPicker creates a new DriverPicker instance.
func NewDriverPicker() DriverPicker {
	return DriverPicker{}
}

// Pick returns the first available driver from candidates.
//
// Every candidate is validated before inspection; an improperly constructed
// driver aborts the pick. Returns ErrNoAvailableDrivers when every candidate
// is busy or the set is empty.
func (p DriverPicker) Pick(candidates []*driver.Driver) (*driver.Driver, error) {
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.IsAvailable() {
			return candidate, nil
		}
	}

	return nil, ErrNoAvailableDrivers
}
