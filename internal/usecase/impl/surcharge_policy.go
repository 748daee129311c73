package impl

import (
	"depot/config"
	"depot/internal/errors"

	"github.com/shopspring/decimal"
)

const surchargeNotice = "Some items are shipping from a non-closest warehouse due to availability. An additional surcharge was applied."

// SurchargePolicy derives the non-closest fulfillment fee and notice.
// It is pure: the only inputs are the configured amount and the
// non-closest flag of the current checkout pass.
type SurchargePolicy struct {
	amount decimal.Decimal
}

// NewSurchargePolicy parses the configured surcharge amount. A missing
// section or empty amount disables the fee.
func NewSurchargePolicy(cfg *config.Config) (*SurchargePolicy, error) {
	if cfg.Surcharge == nil || cfg.Surcharge.Amount == "" {
		return &SurchargePolicy{amount: decimal.Zero}, nil
	}

	amount, err := decimal.NewFromString(cfg.Surcharge.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid surcharge amount %q", cfg.Surcharge.Amount)
	}
	if amount.IsNegative() {
		return nil, errors.Errorf("surcharge amount %q must not be negative", cfg.Surcharge.Amount)
	}

	return &SurchargePolicy{amount: amount}, nil
}

// Fee returns the fee to add to order totals and whether it applies.
// A fee applies iff a non-closest warehouse was used and the configured
// amount is positive.
func (p *SurchargePolicy) Fee(nonClosestUsed bool) (decimal.Decimal, bool) {
	if !nonClosestUsed || !p.amount.IsPositive() {
		return decimal.Zero, false
	}

	return p.amount, true
}

// Notice returns the customer-facing message shown pre-checkout, or an
// empty string when no surcharge applies.
func (p *SurchargePolicy) Notice(nonClosestUsed bool) string {
	if _, applied := p.Fee(nonClosestUsed); !applied {
		return ""
	}

	return surchargeNotice
}
