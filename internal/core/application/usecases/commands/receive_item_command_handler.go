package commands

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
)

// maxReceiptRetries bounds retries of a receipt attempt that failed on a
// transient persistence error. Business rejections are never retried.
const maxReceiptRetries = 3

// ReceiveItemCommandHandler orchestrates the goods receipt workflow: it locks
// the order and the destination location, applies the receipt through the
// domain service, appends a stock movement, and commits everything atomically.
//
// Transient persistence failures are retried with exponential backoff against
// a fresh transaction; business rule rejections fail immediately.
//
// Example:
//
//	handler := NewReceiveItemCommandHandler(uowFactory)
//	cmd, _ := NewReceiveItemCommand(orderID, itemID, 25)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOverReceipt):
//	    // More goods arrived than were ordered
//	case errors.Is(err, warehouse.ErrInsufficientCapacity):
//	    // The destination location cannot hold the delivery
//	case err != nil:
//	    // Persistence failure after retries
//	}
type ReceiveItemCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewReceiveItemCommandHandler creates a handler for goods receipt operations.
// Requires a ReceiptUoWFactory for coordinating transactional updates across
// the order, location, and movement repositories.
func NewReceiveItemCommandHandler(uowFactory ReceiptUoWFactory) ReceiveItemCommandHandler {
	return ReceiveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the goods receipt command.
//
// The order row and, when the item has a destination, the location row are
// locked for the duration of the transaction, so concurrent receipts against
// the same order or location serialize rather than interleave. All mutations
// commit together or not at all.
func (h ReceiveItemCommandHandler) Handle(ctx context.Context, cmd ReceiveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operation := func() error {
		if err := h.receiveOnce(ctx, cmd); err != nil {
			if isBusinessError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxReceiptRetries)
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

// receiveOnce runs a single transactional receipt attempt.
func (h ReceiveItemCommandHandler) receiveOnce(ctx context.Context, cmd ReceiveItemCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	po, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, err := po.Item(cmd.ItemID())
	if err != nil {
		return err
	}

	prod, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return err
	}

	var location *warehouse.Location
	if item.LocationID() != nil {
		location, err = uow.LocationRepository().GetForUpdate(ctx, *item.LocationID())
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	receipt, err := services.NewGoodsReceiptService().Receive(
		po, cmd.ItemID(), cmd.Quantity(), prod, location, now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, po); err != nil {
		return err
	}

	if receipt.AllocatedVolume > 0 {
		if err = uow.LocationRepository().Update(ctx, location); err != nil {
			return err
		}
	}

	if location != nil {
		movement, movementErr := warehouse.NewMovement(
			kernel.NewUUID(), item.ProductID(), location.ID(),
			cmd.Quantity(), warehouse.DirectionIn, movementReference(po), now,
		)
		if movementErr != nil {
			return movementErr
		}
		if err = uow.MovementRepository().Add(ctx, movement); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// movementReference links a stock movement back to its purchase order,
// preferring the human-readable code over the raw identifier.
func movementReference(po *order.PurchaseOrder) string {
	if po.Code() != "" {
		return po.Code()
	}
	return po.ID().String()
}

// isBusinessError reports whether an error is a deterministic business rule
// rejection that retrying cannot fix.
func isBusinessError(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, order.ErrIllegalTransition) ||
		errors.Is(err, order.ErrQuantityIsInvalid) ||
		errors.Is(err, order.ErrOverReceipt) ||
		errors.Is(err, warehouse.ErrInsufficientCapacity) ||
		errors.Is(err, warehouse.ErrOverRelease)
}
