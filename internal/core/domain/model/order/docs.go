// Package order implements the purchase order aggregate: the order entity,
// its owned line items, and the status state machine that tracks the order
// from creation through partial and full receipt.
//
// The aggregate enforces the receiving invariants of the fulfillment engine:
// received quantities are monotonically non-decreasing and never exceed
// ordered quantities, the monetary total is always derived from ordered
// quantities and unit prices, and terminal statuses (Received, Canceled)
// are never left once entered.
package order
