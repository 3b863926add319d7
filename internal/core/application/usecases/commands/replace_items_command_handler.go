package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// ReplaceItemsCommandHandler swaps a purchase order's item collection.
// The domain aggregate rejects replacement once any receiving progress
// exists; this handler adds reference verification for the new items.
type ReplaceItemsCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewReplaceItemsCommandHandler creates a handler for item replacement.
func NewReplaceItemsCommandHandler(uowFactory OrderingUoWFactory) ReplaceItemsCommandHandler {
	return ReplaceItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement command.
// Resolves product and location references for the new items, applies the
// replacement on the locked order, and persists the result.
func (h ReplaceItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceItemsCommand) error {
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

	items, err := h.buildItems(ctx, uow, cmd.Items())
	if err != nil {
		return err
	}

	if err = po.ReplaceItems(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ReplaceItemsCommandHandler) buildItems(
	ctx context.Context,
	uow OrderingUoW,
	inputs []ItemInput,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		prod, err := uow.ProductRepository().Get(ctx, input.ProductID)
		if err != nil {
			return nil, asInvalidReference("product", err)
		}

		if input.LocationID != nil {
			if _, err = uow.LocationRepository().Get(ctx, *input.LocationID); err != nil {
				return nil, asInvalidReference("location", err)
			}
		}

		unitPrice := prod.DefaultPrice()
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}

		item, err := order.NewItem(
			kernel.NewUUID(), input.ProductID, input.Quantity, unitPrice,
			input.Description, input.LocationID,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}
