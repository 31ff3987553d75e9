package repository

import (
	"context"
	"errors"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no cart.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when a (cart, product) pair has no item.
var ErrCartItemNotFound = errors.New("cart item not found")

// ErrDuplicateCartItem is returned when an insert hits the unique
// (cart, product) constraint.
var ErrDuplicateCartItem = errors.New("product already in cart")

// CartRepository defines the operations for cart and cart item persistence.
type CartRepository interface {
	// FindByUserID retrieves the cart owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart. The one-cart-per-user rule is
	// settled by the storage's unique constraint on the owner.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItems retrieves every item of a cart with its product loaded,
	// oldest first.
	FindItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)

	// FindItem retrieves the item for a (cart, product) pair.
	FindItem(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// CreateItem persists a new cart item. Duplicate (cart, product) pairs
	// are rejected by the storage's unique constraint.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity persists a changed quantity for an existing item.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a cart item.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
