package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantstore/internal/delivery/context"
	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo  repository.CartRepository
	plantRepo repository.PlantRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	PlantRepo repository.PlantRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:  params.CartRepo,
		plantRepo: params.PlantRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems returns the user's cart contents with its derived totals. An
// empty cart is a valid result, not an error.
func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) (*usecase.CartContents, error) {
	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.FindItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	totalPrice, totalCount := entity.CartTotals(items)

	return &usecase.CartContents{
		Items:           items,
		TotalCartPrice:  totalPrice,
		TotalItemsCount: totalCount,
	}, nil
}

// AddItem puts a plant into the user's cart with quantity one. Adding a plant
// that is already in the cart is rejected; quantity changes go through the
// dedicated operations.
func (srv *cartService) AddItem(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, error) {
	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlantNotFound, "plant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find plant")
	}

	item := &entity.CartItem{
		CartID:    cart.ID,
		ProductID: plant.ID,
		Quantity:  1,
	}
	if err := srv.cartRepo.CreateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartItem) {
			return nil, domainerrors.NewValidationError("This product is already in the cart.")
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}
	item.Product = plant

	srv.log(ctx).Debug("Cart item added", slog.Any("cartID", cart.ID), slog.Any("plantID", plant.ID))

	return item, nil
}

// RemoveItem deletes the plant's item from the user's cart regardless of
// quantity.
func (srv *cartService) RemoveItem(ctx context.Context, userID, plantID uuid.UUID) error {
	item, err := srv.findItem(ctx, userID, plantID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// IncreaseQuantity adds one to the item's quantity.
func (srv *cartService) IncreaseQuantity(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.findItem(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}

	item.Quantity++
	if err := srv.cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return item, nil
}

// DecreaseQuantity subtracts one from the item's quantity. At quantity one
// the item is deleted instead, reported through the removed flag.
func (srv *cartService) DecreaseQuantity(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, bool, error) {
	item, err := srv.findItem(ctx, userID, plantID)
	if err != nil {
		return nil, false, err
	}

	if item.Quantity <= 1 {
		if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return nil, false, errors.Wrap(err, "failed to delete cart item")
		}

		srv.log(ctx).Debug("Cart item removed at quantity one", slog.Any("itemID", item.ID))

		return nil, true, nil
	}

	item.Quantity--
	if err := srv.cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity); err != nil {
		return nil, false, errors.Wrap(err, "failed to update cart item quantity")
	}

	return item, false, nil
}

func (srv *cartService) findCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "user has no cart")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// findItem resolves the item for a plant within the user's own cart.
func (srv *cartService) findItem(ctx context.Context, userID, plantID uuid.UUID) (*entity.CartItem, error) {
	cart, err := srv.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := srv.cartRepo.FindItem(ctx, cart.ID, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "plant is not in the cart")
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return item, nil
}
