package impl

import (
	"testing"

	"depot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policyWithAmount(t *testing.T, amount string) *SurchargePolicy {
	t.Helper()

	cfg := &config.Config{}
	if amount != "" {
		cfg.Surcharge = &config.SurchargeConfig{Amount: amount}
	}

	policy, err := NewSurchargePolicy(cfg)
	require.NoError(t, err)

	return policy
}

func TestNewSurchargePolicy_MissingSectionDisablesFee(t *testing.T) {
	policy := policyWithAmount(t, "")

	fee, applied := policy.Fee(true)
	assert.False(t, applied)
	assert.True(t, fee.IsZero())
}

func TestNewSurchargePolicy_InvalidAmount(t *testing.T) {
	_, err := NewSurchargePolicy(&config.Config{
		Surcharge: &config.SurchargeConfig{Amount: "abc"},
	})
	require.Error(t, err)
}

func TestNewSurchargePolicy_NegativeAmount(t *testing.T) {
	_, err := NewSurchargePolicy(&config.Config{
		Surcharge: &config.SurchargeConfig{Amount: "-1.50"},
	})
	require.Error(t, err)
}

func TestSurchargePolicy_Fee(t *testing.T) {
	tests := []struct {
		name           string
		amount         string
		nonClosestUsed bool
		expectApplied  bool
		expectFee      string
	}{
		{"closest fulfillment never charges", "150.00", false, false, "0"},
		{"non-closest with positive amount charges", "150.00", true, true, "150"},
		{"non-closest with zero amount charges nothing", "0", true, false, "0"},
		{"decimal amounts survive parsing", "99.95", true, true, "99.95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := policyWithAmount(t, tt.amount)

			fee, applied := policy.Fee(tt.nonClosestUsed)
			assert.Equal(t, tt.expectApplied, applied)
			assert.Equal(t, tt.expectFee, fee.String())
		})
	}
}

func TestSurchargePolicy_Notice(t *testing.T) {
	policy := policyWithAmount(t, "150.00")

	assert.Empty(t, policy.Notice(false))
	assert.NotEmpty(t, policy.Notice(true))

	disabled := policyWithAmount(t, "0")
	assert.Empty(t, disabled.Notice(true))
}
