package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItem_TotalPrice(t *testing.T) {
	price, err := decimal.NewFromString("10.50")
	require.NoError(t, err)

	item := &CartItem{Quantity: 3, Product: &Plant{Price: price}}

	expected, err := decimal.NewFromString("31.50")
	require.NoError(t, err)
	assert.True(t, item.TotalPrice().Equal(expected))
}

func TestCartTotals(t *testing.T) {
	price1, err := decimal.NewFromString("10.50")
	require.NoError(t, err)
	price2, err := decimal.NewFromString("16.99")
	require.NoError(t, err)

	items := []*CartItem{
		{Quantity: 3, Product: &Plant{Price: price1}},
		{Quantity: 1, Product: &Plant{Price: price2}},
	}

	totalPrice, itemsCount := CartTotals(items)

	expected, err := decimal.NewFromString("48.49")
	require.NoError(t, err)
	assert.True(t, totalPrice.Equal(expected))
	assert.Equal(t, 4, itemsCount, "quantities are summed across lines")
}

func TestCartTotals_Empty(t *testing.T) {
	totalPrice, itemsCount := CartTotals(nil)

	assert.True(t, totalPrice.IsZero())
	assert.Zero(t, itemsCount)
}
