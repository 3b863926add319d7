package commands

import (
	"context"
)

// CancelOrderCommandHandler handles explicit purchase order cancellation.
// Cancellation wins over receiving progress: a partially received order can
// be canceled, and once canceled the order rejects all further receipts.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// The order row is locked so a racing receipt and a cancel serialize; the
// loser of the race sees the winner's terminal state and is rejected.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if err = po.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
