package order

import (
	"errors"
	"fmt"

	"procurement/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a command is incompatible with the
// purchase order's current status: receiving against a terminal order,
// canceling an already terminal order, issuing a non-draft order, or
// replacing items once receiving has started.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	Draft ──> Issued ──> PartiallyReceived ──> Received
//	  │          │               │
//	  └──────────┴───────────────┴──────────> Canceled
//
// Receiving progress moves an order between Draft/Issued, PartiallyReceived,
// and Received; Canceled is reachable only through an explicit cancel command.
// Received and Canceled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a purchase order still being edited; ordered quantities may change.
	Draft

	// Issued is a purchase order sent to the supplier; ordered quantities are frozen.
	Issued

	// PartiallyReceived indicates at least one item has receiving progress
	// but not every item is complete.
	PartiallyReceived

	// Received indicates every item is fully received. Terminal.
	Received

	// Canceled indicates the order was explicitly canceled. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Draft:             "DRAFT",
		Issued:            "ISSUED",
		PartiallyReceived: "PARTIALLY_RECEIVED",
		Received:          "RECEIVED",
		Canceled:          "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:             "DRAFT",
		Issued:            "ISSUED",
		PartiallyReceived: "PARTIALLY_RECEIVED",
		Received:          "RECEIVED",
		Canceled:          "CANCELED",
	}
}

// StatusFromString parses the canonical string representation of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Issued, PartiallyReceived, Received, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Received and Canceled are terminal.
func (s Status) IsTerminal() bool {
	return s == Received || s == Canceled
}

// ValidateReceive checks whether goods may be received while in this status.
//
// Receiving is allowed in Draft, Issued, and PartiallyReceived.
// Receiving against a Received or Canceled order is an illegal transition.
func (s Status) ValidateReceive() error {
	switch s {
	case Draft, Issued, PartiallyReceived:
		return nil
	default:
		return fmt.Errorf("%w: cannot receive goods against a %s order", ErrIllegalTransition, s)
	}
}

// Issue transitions the status from Draft to Issued.
//
// Returns:
//   - (Issued, nil) when the current status is Draft
//   - (0, ErrIllegalTransition) otherwise
func (s Status) Issue() (Status, error) {
	if s != Draft {
		return 0, fmt.Errorf("%w: cannot issue a %s order", ErrIllegalTransition, s)
	}
	return Issued, nil
}

// Cancel transitions the status to Canceled.
//
// Cancellation is allowed from any non-terminal status. Canceling an order
// that is already Received or Canceled is an illegal transition.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot cancel a %s order", ErrIllegalTransition, s)
	}
	return Canceled, nil
}
