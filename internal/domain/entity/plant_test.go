package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlant_DiscountedPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    string
		discount int
		expected string
	}{
		{"no discount", "24.99", 0, "24.99"},
		{"ten percent", "24.99", 10, "22.49"},
		{"rounds to two decimals", "10.00", 33, "6.70"},
		{"full discount", "24.99", 100, "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := decimal.NewFromString(tc.price)
			assert.NoError(t, err)

			plant := &Plant{Price: price, DiscountPercentage: tc.discount}

			expected, err := decimal.NewFromString(tc.expected)
			assert.NoError(t, err)
			assert.True(t, plant.DiscountedPrice().Equal(expected),
				"got %s, want %s", plant.DiscountedPrice(), expected)
		})
	}
}

func TestPlant_InStock(t *testing.T) {
	assert.True(t, (&Plant{StockCount: 1}).InStock())
	assert.False(t, (&Plant{StockCount: 0}).InStock())
}
