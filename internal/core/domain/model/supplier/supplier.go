// Package supplier implements the supplier directory entry that purchase
// orders are placed against.
package supplier

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrSupplierIsNotConstructed is returned when using an improperly
// initialized Supplier.
var ErrSupplierIsNotConstructed = errors.New(
	"Supplier must be created via NewSupplier or RestoreSupplier constructor",
)

// Supplier is a directory entry for a vendor. Only the name carries a
// business rule; the remaining fields are contact bookkeeping.
type Supplier struct {
	// id uniquely identifies the supplier
	id kernel.UUID

	// name is the supplier's display name
	name string

	// taxID is the optional tax registration number
	taxID string

	// email is the optional contact address
	email string

	// address is the optional postal address
	address string

	// notes is an optional free-form note
	notes string

	// guard ensures the supplier was properly constructed
	guard guard.ConstructorGuard
}

// NewSupplier creates a supplier directory entry.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must not be empty)
//   - taxID, email, address, notes: Optional contact details (may be empty)
func NewSupplier(id kernel.UUID, name, taxID, email, address, notes string) (*Supplier, error) {
	supplier := &Supplier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplier.setID(id),
		supplier.setName(name),
	); err != nil {
		return nil, err
	}

	supplier.taxID = taxID
	supplier.email = email
	supplier.address = address
	supplier.notes = notes
	return supplier, nil
}

// RestoreSupplier reconstructs a supplier from persistent storage.
func RestoreSupplier(id kernel.UUID, name, taxID, email, address, notes string) (*Supplier, error) {
	return NewSupplier(id, name, taxID, email, address, notes)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier's display name.
func (s *Supplier) Name() string {
	return s.name
}

// TaxID returns the optional tax registration number.
func (s *Supplier) TaxID() string {
	return s.taxID
}

// Email returns the optional contact address.
func (s *Supplier) Email() string {
	return s.email
}

// Address returns the optional postal address.
func (s *Supplier) Address() string {
	return s.address
}

// Notes returns the optional free-form note.
func (s *Supplier) Notes() string {
	return s.notes
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
