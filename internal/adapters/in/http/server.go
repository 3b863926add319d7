// Package http provides the REST adapter for the procurement service.
// It translates between the external API vocabulary and the application
// layer's commands and queries.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/metrics"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreatePurchaseOrderCommandHandler
	receiveItemHandler    commands.ReceiveItemCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	issueOrderHandler     commands.IssueOrderCommandHandler
	replaceItemsHandler   commands.ReplaceItemsCommandHandler
	deleteOrderHandler    commands.DeletePurchaseOrderCommandHandler
	createLocationHandler commands.CreateLocationCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	createSupplierHandler commands.CreateSupplierCommandHandler

	// Query handlers
	getOrderHandler     queries.GetPurchaseOrderQueryHandler
	getOrdersByStatus   queries.GetPurchaseOrdersByStatusQueryHandler
	getDashboardHandler queries.GetDashboardMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreatePurchaseOrderCommandHandler,
	receiveItemHandler commands.ReceiveItemCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	issueOrderHandler commands.IssueOrderCommandHandler,
	replaceItemsHandler commands.ReplaceItemsCommandHandler,
	deleteOrderHandler commands.DeletePurchaseOrderCommandHandler,
	createLocationHandler commands.CreateLocationCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createSupplierHandler commands.CreateSupplierCommandHandler,
	getOrderHandler queries.GetPurchaseOrderQueryHandler,
	getOrdersByStatus queries.GetPurchaseOrdersByStatusQueryHandler,
	getDashboardHandler queries.GetDashboardMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		receiveItemHandler:    receiveItemHandler,
		cancelOrderHandler:    cancelOrderHandler,
		issueOrderHandler:     issueOrderHandler,
		replaceItemsHandler:   replaceItemsHandler,
		deleteOrderHandler:    deleteOrderHandler,
		createLocationHandler: createLocationHandler,
		createProductHandler:  createProductHandler,
		createSupplierHandler: createSupplierHandler,
		getOrderHandler:       getOrderHandler,
		getOrdersByStatus:     getOrdersByStatus,
		getDashboardHandler:   getDashboardHandler,
	}
}

// RegisterRoutes wires all API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.GET("/purchase-orders", s.GetPurchaseOrders)
	api.GET("/purchase-orders/:id", s.GetPurchaseOrder)
	api.PUT("/purchase-orders/:id/items", s.ReplaceItems)
	api.DELETE("/purchase-orders/:id", s.DeletePurchaseOrder)
	api.POST("/purchase-orders/:id/issue", s.IssueOrder)
	api.POST("/purchase-orders/:id/cancel", s.CancelOrder)
	api.POST("/purchase-orders/:orderId/items/:itemId/receive", s.ReceiveItem)

	api.POST("/locations", s.CreateLocation)
	api.POST("/products", s.CreateProduct)
	api.POST("/suppliers", s.CreateSupplier)

	api.GET("/dashboard", s.GetDashboard)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var body NewPurchaseOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplier id: "+err.Error())
	}

	items, err := toItemInputs(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		orderID, body.Code, supplierID, body.OrderDate, body.ExpectedDate, body.Draft, items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.OrdersCreatedCounter.Inc()
	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetPurchaseOrders handles GET /api/v1/purchase-orders.
// The optional status filter uses the external vocabulary; PENDING expands
// to every internal status that is not yet delivered or canceled.
func (s *Server) GetPurchaseOrders(ctx echo.Context) error {
	external := ctx.QueryParam("status")
	if external == "" {
		external = ExternalPending
	}

	statuses, err := internalStatuses(external)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	response := make([]PurchaseOrderSummary, 0)
	for _, status := range statuses {
		query, queryErr := queries.NewGetPurchaseOrdersByStatusQuery(status)
		if queryErr != nil {
			return writeError(ctx, queryErr)
		}

		orders, handleErr := s.getOrdersByStatus.Handle(ctx.Request().Context(), query)
		if handleErr != nil {
			return writeError(ctx, handleErr)
		}

		for _, po := range orders {
			response = append(response, toSummary(po))
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetPurchaseOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	po, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPurchaseOrder(po))
}

// ReplaceItems handles PUT /api/v1/purchase-orders/:id/items.
func (s *Server) ReplaceItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body ReplaceItems
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toItemInputs(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewReplaceItemsCommand(orderID, items)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.replaceItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePurchaseOrder handles DELETE /api/v1/purchase-orders/:id.
func (s *Server) DeletePurchaseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeletePurchaseOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IssueOrder handles POST /api/v1/purchase-orders/:id/issue.
func (s *Server) IssueOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewIssueOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.issueOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/purchase-orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.OrdersCanceledCounter.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveItem handles POST /api/v1/purchase-orders/:orderId/items/:itemId/receive.
func (s *Server) ReceiveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	var body ReceiveItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveItemCommand(orderID, itemID, body.Quantity)
	if err != nil {
		metrics.RecordReceipt("rejected")
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if handleErr := s.receiveItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if statusFor(handleErr) >= http.StatusInternalServerError {
			metrics.RecordReceipt("failed")
		} else {
			metrics.RecordReceipt("rejected")
		}
		return writeError(ctx, handleErr)
	}

	metrics.RecordReceipt("accepted")
	metrics.ReceivedQuantityCounter.Add(body.Quantity)
	return ctx.NoContent(http.StatusNoContent)
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body NewLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(locationID, body.Code, body.Description, body.CapacityVolume)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.createLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: locationID.String()})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, body.SKU, body.Name, body.Description,
		body.UnitVolume, body.Unit, body.DefaultPrice,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: productID.String()})
}

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var body NewSupplier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID := kernel.NewUUID()
	cmd, err := commands.NewCreateSupplierCommand(
		supplierID, body.Name, body.TaxID, body.Email, body.Address, body.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid supplier data: "+err.Error())
	}

	if handleErr := s.createSupplierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: supplierID.String()})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardMetricsQuery()

	result, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardMetrics{
		ProductCount:         result.ProductCount,
		SupplierCount:        result.SupplierCount,
		OpenOrderCount:       result.OpenOrderCount,
		OverdueOrderCount:    result.OverdueOrderCount,
		PendingPurchaseValue: result.PendingPurchaseValue,
		MovementsToday:       result.MovementsToday,
	})
}

// toItemInputs converts request items into the command layer's input form.
func toItemInputs(items []NewItem) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		var locationID *kernel.UUID
		if item.LocationID != nil {
			id, locErr := kernel.UUIDFromString(*item.LocationID)
			if locErr != nil {
				return nil, locErr
			}
			locationID = &id
		}

		inputs = append(inputs, commands.ItemInput{
			ProductID:   productID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Description: item.Description,
			LocationID:  locationID,
		})
	}
	return inputs, nil
}

func toSummary(po queries.PurchaseOrderSummaryResponse) PurchaseOrderSummary {
	status, _ := order.StatusFromString(po.Status)
	return PurchaseOrderSummary{
		ID:             po.ID.String(),
		Code:           po.Code,
		SupplierID:     po.SupplierID.String(),
		OrderDate:      po.OrderDate,
		ExpectedDate:   po.ExpectedDate,
		Status:         externalStatus(status),
		InternalStatus: po.Status,
		TotalAmount:    po.TotalAmount,
		FullyReceived:  po.FullyReceived,
	}
}

func toPurchaseOrder(po queries.PurchaseOrderResponse) PurchaseOrder {
	status, _ := order.StatusFromString(po.Status)

	items := make([]PurchaseOrderItem, 0, len(po.Items))
	for _, item := range po.Items {
		var locationID *string
		if item.LocationID != nil {
			id := item.LocationID.String()
			locationID = &id
		}

		items = append(items, PurchaseOrderItem{
			ID:               item.ID.String(),
			ProductID:        item.ProductID.String(),
			Description:      item.Description,
			OrderedQuantity:  item.OrderedQuantity,
			ReceivedQuantity: item.ReceivedQuantity,
			UnitPrice:        item.UnitPrice,
			LocationID:       locationID,
		})
	}

	return PurchaseOrder{
		ID:             po.ID.String(),
		Code:           po.Code,
		SupplierID:     po.SupplierID.String(),
		OrderDate:      po.OrderDate,
		ExpectedDate:   po.ExpectedDate,
		DeliveryDate:   po.DeliveryDate,
		Status:         externalStatus(status),
		InternalStatus: po.Status,
		TotalAmount:    po.TotalAmount,
		FullyReceived:  po.FullyReceived,
		Items:          items,
	}
}

// statusFor maps application and domain errors onto HTTP status codes.
// Conflicts with business state (over-receipt, exhausted capacity) return 409;
// rejected input returns 400; unknown references inside a request body return
// 400 while a missing addressed resource returns 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOverReceipt),
		errors.Is(err, warehouse.ErrInsufficientCapacity),
		errors.Is(err, warehouse.ErrOverRelease):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInvalidReference),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrQuantityIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
