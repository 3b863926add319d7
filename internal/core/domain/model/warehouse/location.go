package warehouse

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrInsufficientCapacity is returned when an allocation would push the
	// used volume above the location's capacity.
	ErrInsufficientCapacity = errors.New("insufficient capacity at location")

	// ErrOverRelease is returned when a release asks for more volume than
	// is currently allocated at the location.
	ErrOverRelease = errors.New("cannot release more volume than is currently used")

	// ErrLocationIsNotConstructed is returned when using an improperly
	// initialized Location.
	ErrLocationIsNotConstructed = errors.New(
		"Location must be created via NewLocation or RestoreLocation constructor",
	)
)

// Location represents a warehouse storage location with a fixed volume
// capacity. It owns the capacity-ledger invariant of the fulfillment engine:
// at all times 0 ≤ usedVolume ≤ capacityVolume.
//
// Allocate and Release are the only mutations; both fail without partial
// mutation, so a rejected call leaves the ledger exactly as it was.
// Concurrent allocations against the same location are serialized by the
// persistence layer (row-level locking within the receiving transaction).
type Location struct {
	// id uniquely identifies the location
	id kernel.UUID

	// code is the unique human-readable location code, e.g. "A-01-03"
	code string

	// description is an optional free-form note
	description string

	// capacityVolume is the fixed total volume of the location (> 0)
	capacityVolume float64

	// usedVolume is the currently allocated volume (0 ≤ used ≤ capacity)
	usedVolume float64

	// guard ensures the location was properly constructed
	guard guard.ConstructorGuard
}

// NewLocation creates an empty warehouse location.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - code: Unique human-readable code (must not be empty)
//   - description: Optional note (may be empty)
//   - capacityVolume: Fixed total volume (must be greater than 0)
func NewLocation(id kernel.UUID, code, description string, capacityVolume float64) (*Location, error) {
	location := &Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setID(id),
		location.setCode(code),
		location.setCapacityVolume(capacityVolume),
	); err != nil {
		return nil, err
	}

	location.description = description
	return location, nil
}

// RestoreLocation reconstructs a warehouse location from persistent storage,
// including its current used volume.
func RestoreLocation(
	id kernel.UUID,
	code, description string,
	capacityVolume, usedVolume float64,
) (*Location, error) {
	location, err := NewLocation(id, code, description, capacityVolume)
	if err != nil {
		return nil, err
	}

	if usedVolume < 0 || usedVolume > capacityVolume {
		return nil, errs.NewValueIsOutOfRangeError("usedVolume", usedVolume, 0, capacityVolume)
	}

	location.usedVolume = usedVolume
	return location, nil
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Code returns the unique human-readable location code.
func (l *Location) Code() string {
	return l.code
}

// Description returns the optional free-form note.
func (l *Location) Description() string {
	return l.description
}

// CapacityVolume returns the fixed total volume of the location.
func (l *Location) CapacityVolume() float64 {
	return l.capacityVolume
}

// UsedVolume returns the currently allocated volume.
func (l *Location) UsedVolume() float64 {
	return l.usedVolume
}

// AvailableVolume returns the volume still free for allocation.
func (l *Location) AvailableVolume() float64 {
	return l.capacityVolume - l.usedVolume
}

// HasAvailableSpace reports whether the given volume would still fit.
func (l *Location) HasAvailableSpace(volume float64) bool {
	return l.AvailableVolume() >= volume
}

// Allocate reserves the given volume at this location.
//
// Business rules enforced:
//   - volume must be greater than 0
//   - usedVolume + volume must not exceed capacityVolume (ErrInsufficientCapacity)
//
// On failure the location is left unchanged.
func (l *Location) Allocate(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"volume is invalid",
			fmt.Errorf("%v is not greater than 0", volume),
		)
	}

	if !l.HasAvailableSpace(volume) {
		return fmt.Errorf(
			"%w %s: capacity %v, used %v, requested %v",
			ErrInsufficientCapacity, l.code, l.capacityVolume, l.usedVolume, volume,
		)
	}

	l.usedVolume += volume
	return nil
}

// Release frees the given volume at this location.
//
// Business rules enforced:
//   - volume must be greater than 0
//   - volume must not exceed usedVolume (ErrOverRelease)
//
// On failure the location is left unchanged.
func (l *Location) Release(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"volume is invalid",
			fmt.Errorf("%v is not greater than 0", volume),
		)
	}

	if volume > l.usedVolume {
		return fmt.Errorf(
			"%w: location %s has %v used, requested %v",
			ErrOverRelease, l.code, l.usedVolume, volume,
		)
	}

	l.usedVolume -= volume
	return nil
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	l.code = code
	return nil
}

func (l *Location) setCapacityVolume(capacityVolume float64) error {
	if capacityVolume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityVolume is invalid",
			fmt.Errorf("%v is not greater than 0", capacityVolume),
		)
	}
	l.capacityVolume = capacityVolume
	return nil
}
