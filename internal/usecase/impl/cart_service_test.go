package impl

import (
	"context"
	"testing"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	mockRepo "plantstore/internal/mocks/repository"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	cartRepo  *mockRepo.MockCartRepository
	plantRepo *mockRepo.MockPlantRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:  cartRepo,
		PlantRepo: plantRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:   service,
		cartRepo:  cartRepo,
		plantRepo: plantRepo,
	}
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	require.NoError(t, err)

	return d
}

func TestCartService_ListItems_Totals(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	items := []*entity.CartItem{
		{
			ID:       uuid.New(),
			CartID:   cart.ID,
			Quantity: 3,
			Product:  &entity.Plant{ID: uuid.New(), Name: "Monstera", Price: mustDecimal(t, "10.50")},
		},
		{
			ID:       uuid.New(),
			CartID:   cart.ID,
			Quantity: 1,
			Product:  &entity.Plant{ID: uuid.New(), Name: "Ficus", Price: mustDecimal(t, "16.99")},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItems(ctx, cart.ID).Return(items, nil)

	contents, err := fx.service.ListItems(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, contents)
	assert.Len(t, contents.Items, 2)
	assert.True(t, contents.TotalCartPrice.Equal(mustDecimal(t, "48.49")))
	assert.Equal(t, 4, contents.TotalItemsCount, "count sums quantities, not lines")
	assert.False(t, contents.IsEmpty())
}

func TestCartService_ListItems_EmptyCartIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItems(ctx, cart.ID).Return(nil, nil)

	contents, err := fx.service.ListItems(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, contents)
	assert.True(t, contents.IsEmpty())
	assert.True(t, contents.TotalCartPrice.IsZero())
	assert.Zero(t, contents.TotalItemsCount)
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	plant := &entity.Plant{ID: uuid.New(), Name: "Monstera", Price: mustDecimal(t, "10.50")}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.cartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, userID, plant.ID)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, cart.ID, item.CartID)
	assert.Equal(t, plant.ID, item.ProductID)
	assert.Equal(t, 1, item.Quantity)
	assert.Same(t, plant, item.Product)
}

func TestCartService_AddItem_AlreadyInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	plant := &entity.Plant{ID: uuid.New(), Name: "Monstera", Price: mustDecimal(t, "10.50")}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.cartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(repository.ErrDuplicateCartItem)

	item, err := fx.service.AddItem(ctx, userID, plant.ID)

	assert.Nil(t, item)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations(), "This product is already in the cart.")
}

func TestCartService_AddItem_UnknownPlant(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(nil, repository.ErrPlantNotFound)

	item, err := fx.service.AddItem(ctx, userID, plantID)

	assert.Nil(t, item)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: plantID, Quantity: 5}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, plantID).Return(item, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, item.ID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, plantID)

	assert.NoError(t, err)
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, plantID).Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, userID, plantID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_IncreaseQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	item := &entity.CartItem{
		ID:        uuid.New(),
		CartID:    cart.ID,
		ProductID: plantID,
		Quantity:  2,
		Product:   &entity.Plant{ID: plantID, Price: mustDecimal(t, "10.50")},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, plantID).Return(item, nil)
	fx.cartRepo.EXPECT().UpdateItemQuantity(ctx, item.ID, 3).Return(nil)

	updated, err := fx.service.IncreaseQuantity(ctx, userID, plantID)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.Quantity)
}

func TestCartService_DecreaseQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: plantID, Quantity: 3}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, plantID).Return(item, nil)
	fx.cartRepo.EXPECT().UpdateItemQuantity(ctx, item.ID, 2).Return(nil)

	updated, removed, err := fx.service.DecreaseQuantity(ctx, userID, plantID)

	require.NoError(t, err)
	assert.False(t, removed)
	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.Quantity)
}

func TestCartService_DecreaseQuantity_AtOneDeletesItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: plantID, Quantity: 1}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, plantID).Return(item, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, item.ID).Return(nil)

	updated, removed, err := fx.service.DecreaseQuantity(ctx, userID, plantID)

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, updated, "a deleted item is not returned")
}

func TestCartService_MissingCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	contents, err := fx.service.ListItems(ctx, userID)

	assert.Nil(t, contents)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}
