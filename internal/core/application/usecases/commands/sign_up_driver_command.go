package commands

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/guard"
)

var (
	ErrSignUpDriverCommandIsNotConstructed = errors.New(
		"SignUpDriverCommand must be created via NewSignUpDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrEmailIsInvalid          = errors.New("email must contain @")
	ErrPhoneIsRequired         = errors.New("phone is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// SignUpDriverCommand represents a driver registering through the full
// signup flow with contact details. The driver identifier is generated
// server-side by the handler.
type SignUpDriverCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewSignUpDriverCommand creates a command to sign up a new driver.
// All contact fields are required for the signup flow; email uniqueness is
// enforced by storage at execution time.
func NewSignUpDriverCommand(name, email, phone, licenseNumber string) (SignUpDriverCommand, error) {
	signUpCommand := SignUpDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		signUpCommand.setName(name),
		signUpCommand.setEmail(email),
		signUpCommand.setPhone(phone),
		signUpCommand.setLicenseNumber(licenseNumber),
	); err != nil {
		return SignUpDriverCommand{}, err
	}

	return signUpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpDriverCommand) Validate() error {
	return c.guard.Validate(ErrSignUpDriverCommandIsNotConstructed)
}

// Name returns the driver's human-readable name.
func (c SignUpDriverCommand) Name() string {
	return c.name
}

// Email returns the driver's unique email address.
func (c SignUpDriverCommand) Email() string {
	return c.email
}

// Phone returns the driver's phone number.
func (c SignUpDriverCommand) Phone() string {
	return c.phone
}

// LicenseNumber returns the driver's license number.
func (c SignUpDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *SignUpDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignUpDriverCommand) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *SignUpDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *SignUpDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
