package usecase

import (
	"context"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartContents is a cart's items together with the cart-wide aggregates:
// TotalCartPrice sums quantity times unit price per line, TotalItemsCount
// sums quantities across lines (not the number of distinct lines).
type CartContents struct {
	Items           []*entity.CartItem
	TotalCartPrice  decimal.Decimal
	TotalItemsCount int
}

// IsEmpty reports whether the cart holds no items.
func (c *CartContents) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartUsecase defines the interface for shopping cart operations. Every
// method acts on the cart owned by the given user; a missing cart or plant
// is reported as not found.
type CartUsecase interface {
	// ListItems returns the cart's contents and totals. An empty cart is a
	// successful result, unlike the catalog and feedback listings.
	ListItems(ctx context.Context, userID uuid.UUID) (*CartContents, error)

	// AddItem puts a plant into the cart with quantity 1. Adding a plant
	// that is already in the cart fails validation rather than silently
	// incrementing.
	AddItem(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, error)

	// RemoveItem deletes the cart item for the given plant.
	RemoveItem(ctx context.Context, userID, plantID uuid.UUID) error

	// IncreaseQuantity adds one to the item's quantity.
	IncreaseQuantity(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, error)

	// DecreaseQuantity subtracts one from the item's quantity. At quantity 1
	// the item is deleted instead (removed reports this); the stored
	// quantity never reaches 0.
	DecreaseQuantity(ctx context.Context, userID, plantID uuid.UUID) (item *entity.CartItem, removed bool, err error)
}
