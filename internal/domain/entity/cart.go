package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user container for purchasable line items. Exactly one cart
// exists per user; it is created together with the account.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// CartItem associates a plant with a cart at a given quantity. The quantity
// is always positive: an item whose quantity would drop to zero is deleted
// instead. A (cart, product) pair appears at most once.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
	Product   *Plant // Loaded alongside the item for price and serialization.
}

// TotalPrice returns quantity times the product's unit price. The product
// must be loaded.
func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotals aggregates a list of cart items into the cart-wide totals:
// the sum of line prices and the sum of quantities across items (not the
// number of distinct items).
func CartTotals(items []*CartItem) (totalPrice decimal.Decimal, itemsCount int) {
	totalPrice = decimal.Zero
	for _, item := range items {
		totalPrice = totalPrice.Add(item.TotalPrice())
		itemsCount += item.Quantity
	}

	return totalPrice, itemsCount
}
