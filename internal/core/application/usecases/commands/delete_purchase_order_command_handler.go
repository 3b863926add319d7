package commands

import (
	"context"
)

// DeletePurchaseOrderCommandHandler removes a purchase order and its items.
//
// Warehouse capacity consumed by earlier receipts is deliberately not
// released: the goods are physically on the shelf regardless of the order
// record, so deleting the paperwork must not free up shelf space.
type DeletePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeletePurchaseOrderCommandHandler creates a handler for order deletion.
func NewDeletePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) DeletePurchaseOrderCommandHandler {
	return DeletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. The order is fetched first so a
// missing order surfaces as a not-found error rather than a silent no-op.
func (h DeletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
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
	po, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, po.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
