package commands_test

import (
	"errors"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptFixture struct {
	po       *order.PurchaseOrder
	itemID   kernel.UUID
	prod     *product.Product
	location *warehouse.Location
}

// newReceiptFixture builds an issued order with one 10-unit line destined
// for a 100-volume location, for a product occupying 0.5 per unit.
func newReceiptFixture(t *testing.T) receiptFixture {
	t.Helper()

	unitVolume := 0.5
	prod, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Bolts M6", "", &unitVolume, "pcs", 3.5)
	require.NoError(t, err)

	location, err := warehouse.NewLocation(kernel.NewUUID(), "A-01-01", "", 100)
	require.NoError(t, err)

	locationID := location.ID()
	item, err := order.NewItem(kernel.NewUUID(), prod.ID(), 10, 3.5, "", &locationID)
	require.NoError(t, err)

	po, err := order.NewPurchaseOrder(
		kernel.NewUUID(), "PO-1001", kernel.NewUUID(),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), nil, order.Issued,
		[]*order.Item{item},
	)
	require.NoError(t, err)

	return receiptFixture{po: po, itemID: item.ID(), prod: prod, location: location}
}

func TestReceiveItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fx := newReceiptFixture(t)
	cmd, err := commands.NewReceiveItemCommand(fx.po.ID(), fx.itemID, 4)
	require.NoError(t, err)

	orderRepo := new(MockPurchaseOrderRepository)
	locationRepo := new(MockLocationRepository)
	movementRepo := new(MockMovementRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(fx.po, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Twice(),
		locationRepo.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(fx.location, nil).Once(),
		orderRepo.On("Update", mock.Anything, fx.po).Return(nil).Once(),
		locationRepo.On("Update", mock.Anything, fx.location).Return(nil).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		movementRepo.On("Add", mock.Anything, mock.AnythingOfType("*warehouse.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.PartiallyReceived, fx.po.Status())
	require.Equal(t, 2.0, fx.location.UsedVolume())
	orderRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	movementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReceiveItemCommandHandler_Handle_RecordsMovementWithOrderCode(t *testing.T) {
	ctx := t.Context()
	fx := newReceiptFixture(t)
	cmd, err := commands.NewReceiveItemCommand(fx.po.ID(), fx.itemID, 10)
	require.NoError(t, err)

	orderRepo := new(MockPurchaseOrderRepository)
	locationRepo := new(MockLocationRepository)
	movementRepo := new(MockMovementRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PurchaseOrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(fx.po, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once()
	uow.On("LocationRepository").Return(locationRepo).Twice()
	locationRepo.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(fx.location, nil).Once()
	orderRepo.On("Update", mock.Anything, fx.po).Return(nil).Once()
	locationRepo.On("Update", mock.Anything, fx.location).Return(nil).Once()
	movementRepo.On("Add", mock.Anything, mock.MatchedBy(func(m *warehouse.Movement) bool {
		return m.Reference() == "PO-1001" &&
			m.Direction() == warehouse.DirectionIn &&
			m.Quantity() == 10
	})).Return(nil).Once()
	uow.On("MovementRepository").Return(movementRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Received, fx.po.Status())
	require.True(t, fx.po.FullyReceived())
	movementRepo.AssertExpectations(t)
}

func TestReceiveItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReceiveItemCommand{} // not constructed properly
	factory := new(MockReceiptUoWFactory)
	h := commands.NewReceiveItemCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestReceiveItemCommandHandler_Handle_TransientFailureIsRetried(t *testing.T) {
	ctx := t.Context()
	fx := newReceiptFixture(t)
	cmd, err := commands.NewReceiveItemCommand(fx.po.ID(), fx.itemID, 4)
	require.NoError(t, err)

	// First attempt runs all the way to commit and dies on a dropped connection.
	orderRepo1 := new(MockPurchaseOrderRepository)
	locationRepo1 := new(MockLocationRepository)
	movementRepo1 := new(MockMovementRepository)
	productRepo1 := new(MockProductRepository)
	uow1 := new(MockUnitOfWork)
	uow1.On("Begin", ctx).Return(nil).Once()
	uow1.On("PurchaseOrderRepository").Return(orderRepo1).Once()
	orderRepo1.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(fx.po, nil).Once()
	uow1.On("ProductRepository").Return(productRepo1).Once()
	productRepo1.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once()
	uow1.On("LocationRepository").Return(locationRepo1).Twice()
	locationRepo1.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(fx.location, nil).Once()
	orderRepo1.On("Update", mock.Anything, fx.po).Return(nil).Once()
	locationRepo1.On("Update", mock.Anything, fx.location).Return(nil).Once()
	uow1.On("MovementRepository").Return(movementRepo1).Once()
	movementRepo1.On("Add", mock.Anything, mock.AnythingOfType("*warehouse.Movement")).Return(nil).Once()
	uow1.On("Commit", ctx).Return(errors.New("driver: bad connection")).Once()
	uow1.On("Rollback", ctx).Return(nil).Once()

	// The retry loads the state the failed transaction never committed.
	locationID := fx.location.ID()
	freshLocation, err := warehouse.NewLocation(locationID, "A-01-01", "", 100)
	require.NoError(t, err)
	freshItem, err := order.NewItem(fx.itemID, fx.prod.ID(), 10, 3.5, "", &locationID)
	require.NoError(t, err)
	freshOrder, err := order.NewPurchaseOrder(
		fx.po.ID(), fx.po.Code(), fx.po.SupplierID(),
		fx.po.OrderDate(), nil, order.Issued, []*order.Item{freshItem},
	)
	require.NoError(t, err)

	orderRepo2 := new(MockPurchaseOrderRepository)
	locationRepo2 := new(MockLocationRepository)
	movementRepo2 := new(MockMovementRepository)
	productRepo2 := new(MockProductRepository)
	uow2 := new(MockUnitOfWork)
	uow2.On("Begin", ctx).Return(nil).Once()
	uow2.On("PurchaseOrderRepository").Return(orderRepo2).Once()
	orderRepo2.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(freshOrder, nil).Once()
	uow2.On("ProductRepository").Return(productRepo2).Once()
	productRepo2.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once()
	uow2.On("LocationRepository").Return(locationRepo2).Twice()
	locationRepo2.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(freshLocation, nil).Once()
	orderRepo2.On("Update", mock.Anything, freshOrder).Return(nil).Once()
	locationRepo2.On("Update", mock.Anything, freshLocation).Return(nil).Once()
	uow2.On("MovementRepository").Return(movementRepo2).Once()
	movementRepo2.On("Add", mock.Anything, mock.AnythingOfType("*warehouse.Movement")).Return(nil).Once()
	uow2.On("Commit", ctx).Return(nil).Once()
	uow2.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Each attempt gets its own transaction.
	factory.AssertNumberOfCalls(t, "Create", 2)
	require.Equal(t, order.PartiallyReceived, freshOrder.Status())
	require.Equal(t, 2.0, freshLocation.UsedVolume())
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReceiveItemCommandHandler_Handle_OrderNotFoundIsNotRetried(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReceiveItemCommand(orderID, kernel.NewUUID(), 1)
	require.NoError(t, err)

	orderRepo := new(MockPurchaseOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PurchaseOrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// A business rejection must not spin up further transactions.
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestReceiveItemCommandHandler_Handle_OverReceiptIsNotRetried(t *testing.T) {
	ctx := t.Context()
	fx := newReceiptFixture(t)
	cmd, err := commands.NewReceiveItemCommand(fx.po.ID(), fx.itemID, 11)
	require.NoError(t, err)

	orderRepo := new(MockPurchaseOrderRepository)
	locationRepo := new(MockLocationRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PurchaseOrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(fx.po, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once()
	uow.On("LocationRepository").Return(locationRepo).Once()
	locationRepo.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(fx.location, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOverReceipt)
	require.Equal(t, order.Issued, fx.po.Status())
	require.Equal(t, 0.0, fx.location.UsedVolume())
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestReceiveItemCommandHandler_Handle_InsufficientCapacityIsNotRetried(t *testing.T) {
	ctx := t.Context()
	fx := newReceiptFixture(t)
	// Fill the location so any footprint is rejected.
	require.NoError(t, fx.location.Allocate(100))

	cmd, err := commands.NewReceiveItemCommand(fx.po.ID(), fx.itemID, 10)
	require.NoError(t, err)

	orderRepo := new(MockPurchaseOrderRepository)
	locationRepo := new(MockLocationRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PurchaseOrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, fx.po.ID()).Return(fx.po, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, fx.prod.ID()).Return(fx.prod, nil).Once()
	uow.On("LocationRepository").Return(locationRepo).Once()
	locationRepo.On("GetForUpdate", mock.Anything, fx.location.ID()).Return(fx.location, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, warehouse.ErrInsufficientCapacity)
	require.Equal(t, order.Issued, fx.po.Status())
	factory.AssertNumberOfCalls(t, "Create", 1)
}
