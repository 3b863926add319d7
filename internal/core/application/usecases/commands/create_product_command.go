package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrSKUIsRequired         = errors.New("sku is required")
	ErrNameIsRequired        = errors.New("name is required")
	ErrUnitVolumeIsInvalid   = errors.New("unitVolume must be greater than 0")
	ErrDefaultPriceIsInvalid = errors.New("defaultPrice must not be negative")
)

// CreateProductCommand represents a request to register a new catalog product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	sku          string
	name         string
	description  string
	unitVolume   *float64
	unit         string
	defaultPrice float64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog product.
func NewCreateProductCommand(
	productID kernel.UUID,
	sku, name, description string,
	unitVolume *float64,
	unit string,
	defaultPrice float64,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setSKU(sku),
		productCommand.setName(name),
		productCommand.setUnitVolume(unitVolume),
		productCommand.setDefaultPrice(defaultPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}

	productCommand.description = description
	productCommand.unit = unit
	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SKU returns the unique stock keeping unit code.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Name returns the display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional note.
func (c CreateProductCommand) Description() string {
	return c.description
}

// UnitVolume returns the volume of one unit, nil when unknown.
func (c CreateProductCommand) UnitVolume() *float64 {
	return c.unitVolume
}

// Unit returns the measurement unit for quantities.
func (c CreateProductCommand) Unit() string {
	return c.unit
}

// DefaultPrice returns the suggested purchase price per unit.
func (c CreateProductCommand) DefaultPrice() float64 {
	return c.defaultPrice
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setUnitVolume(unitVolume *float64) error {
	if unitVolume != nil && *unitVolume <= 0 {
		return ErrUnitVolumeIsInvalid
	}

	c.unitVolume = unitVolume
	return nil
}

func (c *CreateProductCommand) setDefaultPrice(defaultPrice float64) error {
	if defaultPrice < 0 {
		return ErrDefaultPriceIsInvalid
	}

	c.defaultPrice = defaultPrice
	return nil
}
