package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCreateSupplierCommandIsNotConstructed = errors.New(
	"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
)

// CreateSupplierCommand represents a request to register a new supplier.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	taxID      string
	email      string
	address    string
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a supplier.
func NewCreateSupplierCommand(
	supplierID kernel.UUID,
	name, taxID, email, address, notes string,
) (CreateSupplierCommand, error) {
	supplierCommand := CreateSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplierCommand.setSupplierID(supplierID),
		supplierCommand.setName(name),
	); err != nil {
		return CreateSupplierCommand{}, err
	}

	supplierCommand.taxID = taxID
	supplierCommand.email = email
	supplierCommand.address = address
	supplierCommand.notes = notes
	return supplierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// SupplierID returns the identifier for the new supplier.
func (c CreateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the supplier's display name.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

// TaxID returns the optional tax registration number.
func (c CreateSupplierCommand) TaxID() string {
	return c.taxID
}

// Email returns the optional contact address.
func (c CreateSupplierCommand) Email() string {
	return c.email
}

// Address returns the optional postal address.
func (c CreateSupplierCommand) Address() string {
	return c.address
}

// Notes returns the optional free-form note.
func (c CreateSupplierCommand) Notes() string {
	return c.notes
}

func (c *CreateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateSupplierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
