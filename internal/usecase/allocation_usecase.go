package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// QuoteResult bundles an allocation plan with the fee and notice derived
// from it for one checkout pass.
type QuoteResult struct {
	Plan *entity.AllocationPlan `json:"plan"`

	// SurchargeAmount is the fee to add to order totals, "0" when no fee
	// applies. Decimal string to avoid float money.
	SurchargeAmount string `json:"surcharge_amount"`

	// SurchargeApplied is true iff a non-closest warehouse was used and a
	// positive fee is configured.
	SurchargeApplied bool `json:"surcharge_applied"`

	// Notice is the customer-facing message shown pre-checkout, empty when
	// no surcharge applies.
	Notice string `json:"notice,omitempty"`
}

// CommitInput identifies one planned order for stock reduction.
type CommitInput struct {
	// OrderID keys the idempotent decrement; repeated commits for the same
	// order are no-ops.
	OrderID string `json:"order_id"`

	Plan *entity.AllocationPlan `json:"plan"`
}

// AllocationUsecase defines the interface for nearest-warehouse allocation
// use cases.
type AllocationUsecase interface {
	// Rank orders the given warehouses by haversine distance to origin,
	// lazily geocoding warehouses that lack valid coordinates. When origin
	// is invalid the input order is returned with no distances computed.
	Rank(ctx context.Context, origin entity.GeoPoint, warehouses []*entity.Warehouse) []entity.RankedWarehouse

	// Plan computes a full allocation for the cart demand against the
	// current stock snapshot. Returns ErrInsufficientStock (as an AppError)
	// when any product cannot be fulfilled by a single warehouse; there is
	// no partial result.
	Plan(ctx context.Context, demand entity.CartDemand, customerAddress string) (*entity.AllocationPlan, error)

	// Quote runs Plan and derives the surcharge fee and notice.
	Quote(ctx context.Context, demand entity.CartDemand, customerAddress string) (*QuoteResult, error)

	// CheckFeasible runs the allocation pass before payment and reports
	// whether the demand can be fulfilled against the current stock
	// snapshot. The plan itself is recomputed at order time.
	CheckFeasible(ctx context.Context, demand entity.CartDemand, customerAddress string) error

	// Commit decrements stock for every allocated item, exactly once per
	// (order, product) even when redelivered, and rechecks availability at
	// commit time.
	Commit(ctx context.Context, input *CommitInput) error
}
