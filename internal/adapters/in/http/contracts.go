package http

import "time"

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItem is one requested order line in a create or replace request.
type NewItem struct {
	ProductID   string   `json:"productId"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Description string   `json:"description,omitempty"`
	LocationID  *string  `json:"locationId,omitempty"`
}

// NewPurchaseOrder is the request body for creating a purchase order.
type NewPurchaseOrder struct {
	Code         string     `json:"code,omitempty"`
	SupplierID   string     `json:"supplierId"`
	OrderDate    time.Time  `json:"orderDate"`
	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	Draft        bool       `json:"draft,omitempty"`
	Items        []NewItem  `json:"items"`
}

// ReplaceItems is the request body for replacing an order's line items.
type ReplaceItems struct {
	Items []NewItem `json:"items"`
}

// ReceiveItem is the request body for recording a goods receipt.
type ReceiveItem struct {
	Quantity float64 `json:"quantity"`
}

// NewLocation is the request body for registering a warehouse location.
type NewLocation struct {
	Code           string  `json:"code"`
	Description    string  `json:"description,omitempty"`
	CapacityVolume float64 `json:"capacityVolume"`
}

// NewProduct is the request body for registering a catalog product.
type NewProduct struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	UnitVolume   *float64 `json:"unitVolume,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	DefaultPrice float64  `json:"defaultPrice"`
}

// NewSupplier is the request body for registering a supplier.
type NewSupplier struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Created is the response body for successful creation requests.
type Created struct {
	ID string `json:"id"`
}

// PurchaseOrderItem is one order line in responses.
type PurchaseOrderItem struct {
	ID               string  `json:"id"`
	ProductID        string  `json:"productId"`
	Description      string  `json:"description,omitempty"`
	OrderedQuantity  float64 `json:"orderedQuantity"`
	ReceivedQuantity float64 `json:"receivedQuantity"`
	UnitPrice        float64 `json:"unitPrice"`
	LocationID       *string `json:"locationId,omitempty"`
}

// PurchaseOrder is the full order representation in responses.
// Status carries the external vocabulary, InternalStatus the lifecycle status.
type PurchaseOrder struct {
	ID             string              `json:"id"`
	Code           string              `json:"code,omitempty"`
	SupplierID     string              `json:"supplierId"`
	OrderDate      time.Time           `json:"orderDate"`
	ExpectedDate   *time.Time          `json:"expectedDate,omitempty"`
	DeliveryDate   *time.Time          `json:"deliveryDate,omitempty"`
	Status         string              `json:"status"`
	InternalStatus string              `json:"internalStatus"`
	TotalAmount    float64             `json:"totalAmount"`
	FullyReceived  bool                `json:"fullyReceived"`
	Items          []PurchaseOrderItem `json:"items,omitempty"`
}

// PurchaseOrderSummary is the list representation; items are omitted.
type PurchaseOrderSummary struct {
	ID             string     `json:"id"`
	Code           string     `json:"code,omitempty"`
	SupplierID     string     `json:"supplierId"`
	OrderDate      time.Time  `json:"orderDate"`
	ExpectedDate   *time.Time `json:"expectedDate,omitempty"`
	Status         string     `json:"status"`
	InternalStatus string     `json:"internalStatus"`
	TotalAmount    float64    `json:"totalAmount"`
	FullyReceived  bool       `json:"fullyReceived"`
}

// DashboardMetrics is the response body for the operations dashboard.
type DashboardMetrics struct {
	ProductCount         int64   `json:"productCount"`
	SupplierCount        int64   `json:"supplierCount"`
	OpenOrderCount       int64   `json:"openOrderCount"`
	OverdueOrderCount    int64   `json:"overdueOrderCount"`
	PendingPurchaseValue float64 `json:"pendingPurchaseValue"`
	MovementsToday       int64   `json:"movementsToday"`
}
