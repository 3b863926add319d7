package http

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/order"
)

// External status vocabulary exposed at the API boundary. Several internal
// lifecycle statuses collapse to the same external value, so the external
// view is coarser by design: an order is pending until everything arrived.
const (
	ExternalPending   = "PENDING"
	ExternalDelivered = "DELIVERED"
	ExternalCanceled  = "CANCELED"
)

var ErrUnknownExternalStatus = errors.New("unknown external status")

// externalStatus maps an internal lifecycle status to the external vocabulary.
// The mapping is total: every internal status has exactly one external value.
func externalStatus(status order.Status) string {
	switch status {
	case order.Draft, order.Issued, order.PartiallyReceived:
		return ExternalPending
	case order.Received:
		return ExternalDelivered
	case order.Canceled:
		return ExternalCanceled
	default:
		return ExternalPending
	}
}

// internalStatuses maps an external status to the internal lifecycle statuses
// it covers. PENDING expands to three internal statuses.
func internalStatuses(external string) ([]order.Status, error) {
	switch external {
	case ExternalPending:
		return []order.Status{order.Draft, order.Issued, order.PartiallyReceived}, nil
	case ExternalDelivered:
		return []order.Status{order.Received}, nil
	case ExternalCanceled:
		return []order.Status{order.Canceled}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExternalStatus, external)
	}
}
