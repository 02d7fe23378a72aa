package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents the minimal driver registration path where
// the caller supplies the driver identifier and only a name. Contact details
// stay empty; used by operators pre-registering a known driver fleet.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID
	name     string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver under a
// caller-provided identifier.
func NewRegisterDriverCommand(driverID kernel.DriverID, name string) (RegisterDriverCommand, error) {
	registerCommand := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setDriverID(driverID),
		registerCommand.setName(name),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the caller-provided driver identifier.
func (c RegisterDriverCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// Name returns the driver's human-readable name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}
