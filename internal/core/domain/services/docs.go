// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the procurement system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - GoodsReceiptService: A domain service coordinating item receipt against a
//     purchase order with capacity allocation at a warehouse location
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
