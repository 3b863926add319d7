// Package product implements the product catalog entry referenced by
// purchase order items and stock movements.
package product

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when using an improperly
// initialized Product.
var ErrProductIsNotConstructed = errors.New(
	"Product must be created via NewProduct or RestoreProduct constructor",
)

// Product is a catalog entry. Its unit volume drives warehouse capacity
// accounting: receiving quantity q of a product consumes q * unitVolume
// at the destination location. Products without a known unit volume have
// a zero footprint and never consume capacity.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID

	// sku is the unique stock keeping unit code
	sku string

	// name is the display name
	name string

	// description is an optional free-form note
	description string

	// unitVolume is the volume of one unit, nil when unknown
	unitVolume *float64

	// unit is the measurement unit for quantities, e.g. "pcs" or "kg"
	unit string

	// defaultPrice is the suggested purchase price per unit
	defaultPrice float64

	// active controls whether the product may appear on new orders
	active bool

	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates an active catalog entry.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - sku: Unique stock keeping unit code (must not be empty)
//   - name: Display name (must not be empty)
//   - description: Optional note (may be empty)
//   - unitVolume: Volume of one unit, nil when unknown (must be > 0 when set)
//   - unit: Measurement unit for quantities (may be empty)
//   - defaultPrice: Suggested purchase price per unit (must be ≥ 0)
func NewProduct(
	id kernel.UUID,
	sku, name, description string,
	unitVolume *float64,
	unit string,
	defaultPrice float64,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setSKU(sku),
		product.setName(name),
		product.setUnitVolume(unitVolume),
		product.setDefaultPrice(defaultPrice),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.unit = unit
	product.active = true
	return product, nil
}

// RestoreProduct reconstructs a catalog entry from persistent storage,
// including its active flag.
func RestoreProduct(
	id kernel.UUID,
	sku, name, description string,
	unitVolume *float64,
	unit string,
	defaultPrice float64,
	active bool,
) (*Product, error) {
	product, err := NewProduct(id, sku, name, description, unitVolume, unit, defaultPrice)
	if err != nil {
		return nil, err
	}

	product.active = active
	return product, nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the unique stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional free-form note.
func (p *Product) Description() string {
	return p.description
}

// UnitVolume returns the volume of one unit, or nil when unknown.
func (p *Product) UnitVolume() *float64 {
	return p.unitVolume
}

// Unit returns the measurement unit for quantities.
func (p *Product) Unit() string {
	return p.unit
}

// DefaultPrice returns the suggested purchase price per unit.
func (p *Product) DefaultPrice() float64 {
	return p.defaultPrice
}

// Active reports whether the product may appear on new orders.
func (p *Product) Active() bool {
	return p.active
}

// Footprint returns the warehouse volume consumed by the given quantity
// of this product. Products without a known unit volume have a zero
// footprint: they can be received without consuming location capacity.
func (p *Product) Footprint(quantity float64) float64 {
	if p.unitVolume == nil {
		return 0
	}
	return *p.unitVolume * quantity
}

// Deactivate marks the product as unavailable for new orders.
// Existing orders referencing the product are unaffected.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate marks the product as available for new orders.
func (p *Product) Activate() {
	p.active = true
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitVolume(unitVolume *float64) error {
	if unitVolume != nil && *unitVolume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitVolume is invalid",
			fmt.Errorf("%v is not greater than 0", *unitVolume),
		)
	}
	p.unitVolume = unitVolume
	return nil
}

func (p *Product) setDefaultPrice(defaultPrice float64) error {
	if defaultPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"defaultPrice is invalid",
			fmt.Errorf("%v is negative", defaultPrice),
		)
	}
	p.defaultPrice = defaultPrice
	return nil
}
