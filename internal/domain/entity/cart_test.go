package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDemand(t *testing.T) {
	lines := []CartLine{
		{ProductID: 100, Quantity: 2},
		{ProductID: 100, Quantity: 1},
		{ProductID: 200, VariationID: 201, Quantity: 4},
		{ProductID: 300, Quantity: 0},
		{ProductID: 400, Quantity: -1},
	}

	demand := BuildDemand(lines)

	assert.Equal(t, CartDemand{
		100: 3,
		201: 4,
	}, demand)
}

func TestBuildDemand_VariationIDWinsOverProductID(t *testing.T) {
	demand := BuildDemand([]CartLine{
		{ProductID: 100, VariationID: 101, Quantity: 1},
		{ProductID: 100, VariationID: 102, Quantity: 2},
	})

	assert.Equal(t, CartDemand{101: 1, 102: 2}, demand)
}

func TestBuildDemand_Empty(t *testing.T) {
	assert.Empty(t, BuildDemand(nil))
}
