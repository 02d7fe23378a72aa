package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand represents a manual override of a driver's
// availability flag, used by operators for shift starts and ends. The
// lifecycle manager flips the flag itself during assign/return/deliver; this
// command exists for changes outside any order transition.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.DriverID
	available bool

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates a command to set the identified
// driver's availability flag.
func NewSetDriverAvailabilityCommand(driverID kernel.DriverID, available bool) (SetDriverAvailabilityCommand, error) {
	availabilityCommand := SetDriverAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setDriverID(driverID); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c SetDriverAvailabilityCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// Available returns the desired availability flag value.
func (c SetDriverAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetDriverAvailabilityCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
