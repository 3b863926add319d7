package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrCodeIsRequired         = errors.New("code is required")
	ErrCapacityIsInvalid      = errors.New("capacityVolume must be greater than 0")
)

// CreateLocationCommand represents a request to register a new warehouse
// location with a fixed volume capacity.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID     kernel.UUID
	code           string
	description    string
	capacityVolume float64

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a warehouse location.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	code, description string,
	capacityVolume float64,
) (CreateLocationCommand, error) {
	locationCommand := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setLocationID(locationID),
		locationCommand.setCode(code),
		locationCommand.setCapacityVolume(capacityVolume),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	locationCommand.description = description
	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier for the new location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Code returns the unique human-readable location code.
func (c CreateLocationCommand) Code() string {
	return c.code
}

// Description returns the optional note.
func (c CreateLocationCommand) Description() string {
	return c.description
}

// CapacityVolume returns the fixed total volume.
func (c CreateLocationCommand) CapacityVolume() float64 {
	return c.capacityVolume
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateLocationCommand) setCapacityVolume(capacityVolume float64) error {
	if capacityVolume <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacityVolume = capacityVolume
	return nil
}
