package entity

// ItemAllocation assigns one product's full demand to a single warehouse.
// Line items are never split across warehouses.
type ItemAllocation struct {
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Qty           int64  `json:"qty"`
	WasClosest    bool   `json:"was_closest"`
}

// AllocationPlan is the outcome of one allocation pass over a cart. It is a
// plan computed against a stock snapshot, not a reservation: stock is only
// mutated by a later commit.
type AllocationPlan struct {
	// Allocations maps product identifier to its assignment.
	Allocations map[int64]ItemAllocation `json:"allocations"`

	// NonClosestUsed is true iff any item's warehouse differs from ClosestID.
	NonClosestUsed bool `json:"non_closest_used"`

	// ClosestID is the globally closest active warehouse, 0 when none exist.
	ClosestID int64 `json:"closest_id"`
}

// RankedWarehouse pairs a warehouse with its computed distance to the
// customer. Ranked is false when the customer address could not be geocoded,
// in which case DistanceKm is meaningless and the natural order applies.
type RankedWarehouse struct {
	Warehouse  *Warehouse
	DistanceKm float64
	Ranked     bool
}
