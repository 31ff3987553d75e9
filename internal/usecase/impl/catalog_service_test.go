package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	mockRepo "plantstore/internal/mocks/repository"
	mockSvc "plantstore/internal/mocks/service"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service    usecase.CatalogUsecase
	plantRepo  *mockRepo.MockPlantRepository
	imageStore *mockSvc.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	service := NewCatalogService(CatalogServiceParams{
		PlantRepo:  plantRepo,
		ImageStore: imageStore,
		Logger:     newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:    service,
		plantRepo:  plantRepo,
		imageStore: imageStore,
	}
}

func validCreatePlantInput(t *testing.T) *usecase.CreatePlantInput {
	t.Helper()

	return &usecase.CreatePlantInput{
		Name:               "Monstera Deliciosa",
		Description:        "A large tropical houseplant.",
		Price:              mustDecimal(t, "24.99"),
		DiscountPercentage: 10,
		StockCount:         5,
		Rating:             4.5,
		Image: &usecase.ImageUpload{
			Filename: "monstera.PNG",
			Size:     1024,
			Contents: strings.NewReader("image bytes"),
		},
	}
}

func TestCatalogService_ListPlants_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	plants := []*entity.Plant{
		{ID: uuid.New(), Name: "Monstera"},
		{ID: uuid.New(), Name: "Ficus"},
	}

	fx.plantRepo.EXPECT().FindAll(ctx).Return(plants, nil)

	result, err := fx.service.ListPlants(ctx)

	require.NoError(t, err)
	assert.Equal(t, plants, result)
}

func TestCatalogService_ListPlants_EmptyCatalog(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.plantRepo.EXPECT().FindAll(ctx).Return(nil, nil)

	result, err := fx.service.ListPlants(ctx)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoPlantsFound))
}

func TestCatalogService_GetPlant_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	plantID := uuid.New()

	fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(nil, repository.ErrPlantNotFound)

	plant, err := fx.service.GetPlant(ctx, plantID)

	assert.Nil(t, plant)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
}

func TestCatalogService_CreatePlant_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreatePlantInput(t)

	var savedKey string
	fx.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), input.Image.Contents).
		Run(func(ctx context.Context, key string, contents io.Reader) {
			savedKey = key
		}).
		Return(nil)
	fx.plantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Plant")).Return(nil)

	plant, err := fx.service.CreatePlant(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, plant)
	assert.NotEqual(t, uuid.Nil, plant.ID, "the ID is assigned before the insert")
	assert.Equal(t, "Monstera Deliciosa", plant.Name)
	assert.Equal(t, 4.5, plant.Rating)
	assert.Equal(t, "plants/"+plant.ID.String()+".png", plant.ImagePath, "extension is lowercased")
	assert.Equal(t, plant.ImagePath, savedKey)
}

func TestCatalogService_CreatePlant_CollectsAllViolations(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreatePlantInput{
		Name:               "ab",
		Description:        strings.Repeat("x", 1501),
		Price:              mustDecimal(t, "0"),
		DiscountPercentage: 120,
		StockCount:         -1,
		Rating:             5.5,
		Image: &usecase.ImageUpload{
			Filename: "plant.gif",
			Size:     11 * 1024 * 1024,
			Contents: strings.NewReader("image bytes"),
		},
	}

	plant, err := fx.service.CreatePlant(ctx, input)

	assert.Nil(t, plant)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	violations := validationErr.Violations()
	assert.Contains(t, violations, "The name cannot be empty or contain fewer than 3 characters.")
	assert.Contains(t, violations, "The description field cannot be longer than 1500 characters.")
	assert.Contains(t, violations, "The price field must be greater than 0.")
	assert.Contains(t, violations, "The discount_percentage field must be within 0 and 100 (inclusive).")
	assert.Contains(t, violations, "The stock_count field cannot be negative.")
	assert.Contains(t, violations, "The rating field must be within 0 and 5 (inclusive).")
	assert.Contains(t, violations, "Only PNG, JPG and JPEG images are allowed.")
	assert.Contains(t, violations, "The image file cannot exceed 10MB.")
}

func TestCatalogService_CreatePlant_PriceDigitBudget(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreatePlantInput(t)
	input.Price = mustDecimal(t, "123456789.00") // nine integer digits

	plant, err := fx.service.CreatePlant(ctx, input)

	assert.Nil(t, plant)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations(), "Ensure that the price has no more than 10 digits in total.")
}

func TestCatalogService_CreatePlant_InsertFailureRemovesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreatePlantInput(t)

	var savedKey string
	fx.imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), input.Image.Contents).
		Run(func(ctx context.Context, key string, contents io.Reader) {
			savedKey = key
		}).
		Return(nil)
	fx.plantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Plant")).
		Return(errors.New("insert failed"))
	fx.imageStore.EXPECT().
		Remove(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) {
			assert.Equal(t, savedKey, key, "the orphaned blob is the one just saved")
		}).
		Return(nil)

	plant, err := fx.service.CreatePlant(ctx, input)

	assert.Nil(t, plant)
	assert.Error(t, err)
}

func TestCatalogService_UpdatePlant_ReplacesFieldsAndImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	plantID := uuid.New()
	existing := &entity.Plant{
		ID:                 plantID,
		Name:               "Old Name",
		Price:              mustDecimal(t, "10.00"),
		DiscountPercentage: 0,
		StockCount:         1,
		ImagePath:          "plants/" + plantID.String() + ".jpg",
	}

	input := &usecase.UpdatePlantInput{
		Name:               "New Name",
		Description:        "Updated description.",
		Price:              mustDecimal(t, "12.50"),
		DiscountPercentage: 25,
		StockCount:         7,
		Rating:             3,
		Image: &usecase.ImageUpload{
			Filename: "replacement.png",
			Size:     2048,
			Contents: strings.NewReader("new image bytes"),
		},
	}

	fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(existing, nil)
	fx.imageStore.EXPECT().
		Save(ctx, "plants/"+plantID.String()+".png", input.Image.Contents).
		Return(nil)
	fx.plantRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Plant")).Return(nil)
	fx.imageStore.EXPECT().Remove(ctx, "plants/"+plantID.String()+".jpg").Return(nil)

	plant, err := fx.service.UpdatePlant(ctx, plantID, input)

	require.NoError(t, err)
	require.NotNil(t, plant)
	assert.Equal(t, "New Name", plant.Name)
	assert.True(t, plant.Price.Equal(mustDecimal(t, "12.50")))
	assert.Equal(t, 25, plant.DiscountPercentage)
	assert.Equal(t, 7, plant.StockCount)
	assert.Equal(t, "plants/"+plantID.String()+".png", plant.ImagePath)
}

func TestCatalogService_UpdatePlant_SameExtensionOverwritesInPlace(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	plantID := uuid.New()
	existing := &entity.Plant{
		ID:         plantID,
		Name:       "Monstera",
		Price:      mustDecimal(t, "10.00"),
		StockCount: 1,
		ImagePath:  "plants/" + plantID.String() + ".png",
	}

	input := &usecase.UpdatePlantInput{
		Name:       "Monstera",
		Price:      mustDecimal(t, "10.00"),
		StockCount: 1,
		Image: &usecase.ImageUpload{
			Filename: "retake.png",
			Size:     2048,
			Contents: strings.NewReader("new image bytes"),
		},
	}

	// Same key, so no stale blob to remove afterwards.
	fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(existing, nil)
	fx.imageStore.EXPECT().
		Save(ctx, "plants/"+plantID.String()+".png", input.Image.Contents).
		Return(nil)
	fx.plantRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Plant")).Return(nil)

	plant, err := fx.service.UpdatePlant(ctx, plantID, input)

	require.NoError(t, err)
	require.NotNil(t, plant)
}

func TestCatalogService_UpdatePlant_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	plantID := uuid.New()
	input := &usecase.UpdatePlantInput{
		Name:       "New Name",
		Price:      mustDecimal(t, "12.50"),
		StockCount: 7,
	}

	fx.plantRepo.EXPECT().FindByID(ctx, plantID).Return(nil, repository.ErrPlantNotFound)

	plant, err := fx.service.UpdatePlant(ctx, plantID, input)

	assert.Nil(t, plant)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
}
