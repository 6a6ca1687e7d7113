package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-moviebooking/internal/pricing"
)

func TestSeatPriceByRow(t *testing.T) {
	// Rows A-C are premium
	assert.Equal(t, float64(400), pricing.SeatPrice("A1"))
	assert.Equal(t, float64(400), pricing.SeatPrice("C10"))

	// Rows D-F are gold
	assert.Equal(t, float64(300), pricing.SeatPrice("D5"))
	assert.Equal(t, float64(300), pricing.SeatPrice("F2"))

	// Everything from G on is silver
	assert.Equal(t, float64(200), pricing.SeatPrice("G3"))
	assert.Equal(t, float64(200), pricing.SeatPrice("J10"))
}

func TestTotalPriceSumsTiers(t *testing.T) {
	// One seat from each tier
	assert.Equal(t, float64(900), pricing.TotalPrice([]string{"A1", "D1", "G1"}))

	// Two gold plus one premium
	assert.Equal(t, float64(1000), pricing.TotalPrice([]string{"D1", "D2", "A3"}))

	assert.Equal(t, float64(0), pricing.TotalPrice(nil))
}

func TestTotalPriceDoesNotDeduplicate(t *testing.T) {
	// The selection is trusted as-is; a repeated seat counts twice.
	assert.Equal(t, float64(800), pricing.TotalPrice([]string{"B4", "B4"}))
}

func TestTierName(t *testing.T) {
	assert.Equal(t, "premium", pricing.TierName("B"))
	assert.Equal(t, "gold", pricing.TierName("E"))
	assert.Equal(t, "silver", pricing.TierName("H"))
}
