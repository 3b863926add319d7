package warehouse

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrMovementIsNotConstructed is returned when using an improperly
// initialized Movement.
var ErrMovementIsNotConstructed = errors.New(
	"Movement must be created via NewMovement or RestoreMovement constructor",
)

// Direction tells whether a stock movement brings goods into the warehouse
// or takes them out.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// DirectionIn is an inbound movement, e.g. a goods receipt.
	DirectionIn

	// DirectionOut is an outbound movement, e.g. a stock issue.
	DirectionOut
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionIn:  "IN",
		DirectionOut: "OUT",
	}
}

// DirectionFromString parses the canonical string representation of a direction.
func DirectionFromString(s string) (Direction, error) {
	for direction, str := range getDirectionStrings() {
		if str == s {
			return direction, nil
		}
	}
	return DirectionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"direction is invalid",
		fmt.Errorf("%q is not a valid direction", s),
	)
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if _, ok := getDirectionStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"direction is invalid",
			fmt.Errorf("%d is not a valid direction", d),
		)
	}
	return nil
}

// String returns the canonical name of the direction.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// Movement is an immutable audit record of stock entering or leaving a
// warehouse location. Goods receipts append an IN movement per received
// item; the movement log is never updated or deleted afterwards.
type Movement struct {
	// id uniquely identifies the movement
	id kernel.UUID

	// productID references the product that moved
	productID kernel.UUID

	// locationID references the location the stock moved in or out of
	locationID kernel.UUID

	// quantity is how many units moved (always > 0)
	quantity float64

	// direction is IN or OUT
	direction Direction

	// reference links the movement to its origin, e.g. a purchase order code
	reference string

	// occurredAt is when the movement happened
	occurredAt time.Time

	// guard ensures the movement was properly constructed
	guard guard.ConstructorGuard
}

// NewMovement creates a stock movement record.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - productID: Product reference (must be valid UUID)
//   - locationID: Location reference (must be valid UUID)
//   - quantity: Units moved (must be greater than 0)
//   - direction: DirectionIn or DirectionOut
//   - reference: Origin of the movement, e.g. a purchase order code (may be empty)
//   - occurredAt: When the movement happened (must not be zero)
func NewMovement(
	id kernel.UUID,
	productID kernel.UUID,
	locationID kernel.UUID,
	quantity float64,
	direction Direction,
	reference string,
	occurredAt time.Time,
) (*Movement, error) {
	movement := &Movement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		movement.setID(id),
		movement.setProductID(productID),
		movement.setLocationID(locationID),
		movement.setQuantity(quantity),
		movement.setDirection(direction),
		movement.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	movement.reference = reference
	return movement, nil
}

// RestoreMovement reconstructs a stock movement from persistent storage.
func RestoreMovement(
	id kernel.UUID,
	productID kernel.UUID,
	locationID kernel.UUID,
	quantity float64,
	direction Direction,
	reference string,
	occurredAt time.Time,
) (*Movement, error) {
	return NewMovement(id, productID, locationID, quantity, direction, reference, occurredAt)
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// ProductID returns the moved product's identifier.
func (m *Movement) ProductID() kernel.UUID {
	return m.productID
}

// LocationID returns the identifier of the affected location.
func (m *Movement) LocationID() kernel.UUID {
	return m.locationID
}

// Quantity returns how many units moved.
func (m *Movement) Quantity() float64 {
	return m.quantity
}

// Direction returns whether the movement was inbound or outbound.
func (m *Movement) Direction() Direction {
	return m.direction
}

// Reference returns the origin of the movement, e.g. a purchase order code.
func (m *Movement) Reference() string {
	return m.reference
}

// OccurredAt returns when the movement happened.
func (m *Movement) OccurredAt() time.Time {
	return m.occurredAt
}

// Validate ensures the Movement instance was properly constructed.
func (m *Movement) Validate() error {
	if m == nil {
		return ErrMovementIsNotConstructed
	}
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

func (m *Movement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movement) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	m.productID = productID
	return nil
}

func (m *Movement) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	m.locationID = locationID
	return nil
}

func (m *Movement) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	m.quantity = quantity
	return nil
}

func (m *Movement) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	m.direction = direction
	return nil
}

func (m *Movement) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	m.occurredAt = occurredAt
	return nil
}
