package commands

import (
	"context"
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// ErrInvalidReference is returned when a command names a supplier, product,
// or location that does not exist. Reference checks run inside the command's
// transaction, so a passing check cannot be invalidated before commit.
var ErrInvalidReference = errors.New("referenced object does not exist")

// CreatePurchaseOrderCommandHandler handles the business logic for purchase
// order creation. Verifies every referenced supplier, product, and location
// before building the aggregate.
//
// Example:
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreatePurchaseOrderCommand(orderID, "PO-1001", supplierID,
//	    time.Now(), nil, false, items)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInvalidReference) {
//	    // The supplier, a product, or a location does not exist
//	    return
//	}
type CreatePurchaseOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase order
// creation operations. Requires an OrderingUoWFactory for transactional
// persistence and reference checks.
func NewCreatePurchaseOrderCommandHandler(uowFactory OrderingUoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Resolves all references, snapshots unit prices from the product catalog
// when the command does not carry them, and persists the new aggregate.
// Returns ErrInvalidReference when a referenced object does not exist.
func (h CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) error {
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

	if _, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID()); err != nil {
		return asInvalidReference("supplier", err)
	}

	items, err := h.buildItems(ctx, uow, cmd.Items())
	if err != nil {
		return err
	}

	status := order.Issued
	if cmd.AsDraft() {
		status = order.Draft
	}

	po, err := order.NewPurchaseOrder(
		cmd.OrderID(), cmd.Code(), cmd.SupplierID(),
		cmd.OrderDate(), cmd.ExpectedDate(), status, items,
	)
	if err != nil {
		return err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildItems resolves product and location references and constructs the
// domain items, falling back to the catalog default price when the input
// carries no unit price.
func (h CreatePurchaseOrderCommandHandler) buildItems(
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

// asInvalidReference converts not-found lookups on referenced objects into
// ErrInvalidReference; other repository failures pass through unchanged.
func asInvalidReference(kind string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrInvalidReference, kind)
	}
	return err
}
