// Package warehouse implements the storage side of the fulfillment engine:
// capacity-tracked warehouse locations and the immutable stock movement log.
//
// A Location is a volume ledger: allocations and releases keep the used
// volume between zero and the fixed capacity, and a rejected operation never
// partially mutates the ledger. A Movement is an append-only audit record of
// stock entering or leaving a location.
package warehouse
