package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "plantstore/internal/delivery/context"
	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/domain/service"
	"plantstore/internal/domain/validation"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	plantRepo  repository.PlantRepository
	imageStore service.ImageStore
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PlantRepo  repository.PlantRepository
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		plantRepo:  params.PlantRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlants returns the whole catalog. An empty catalog is reported as
// ErrNoPlantsFound rather than an empty list.
func (srv *catalogService) ListPlants(ctx context.Context) ([]*entity.Plant, error) {
	plants, err := srv.plantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}
	if len(plants) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoPlantsFound, "catalog is empty")
	}

	return plants, nil
}

// GetPlant returns a single plant by ID.
func (srv *catalogService) GetPlant(ctx context.Context, plantID uuid.UUID) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlantNotFound, "plant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find plant")
	}

	return plant, nil
}

// CreatePlant validates the input, stores the uploaded image and inserts the
// plant. The plant ID is assigned up front so the image key is known before
// the insert; a failed insert rolls the stored image back.
func (srv *catalogService) CreatePlant(ctx context.Context, input *usecase.CreatePlantInput) (*entity.Plant, error) {
	var v validation.Violations
	name := validation.PlantFields(input.Name, input.Description, input.Price, input.DiscountPercentage, input.StockCount, input.Rating, &v)
	if input.Image != nil {
		validation.PlantImage(input.Image.Filename, input.Image.Size, &v)
	}
	if err := v.Err(); err != nil {
		srv.log(ctx).Warn("Plant validation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	plant := &entity.Plant{
		ID:                 uuid.New(),
		Name:               name,
		Description:        input.Description,
		Price:              input.Price,
		DiscountPercentage: input.DiscountPercentage,
		StockCount:         input.StockCount,
		Rating:             input.Rating,
	}

	if input.Image != nil {
		imagePath := srv.imagePath(plant.ID, input.Image.Filename)
		if err := srv.imageStore.Save(ctx, imagePath, input.Image.Contents); err != nil {
			return nil, errors.Wrap(err, "failed to store plant image")
		}
		plant.ImagePath = imagePath
	}

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		if plant.ImagePath != "" {
			if removeErr := srv.imageStore.Remove(ctx, plant.ImagePath); removeErr != nil {
				srv.log(ctx).Error("Failed to remove orphaned plant image", slog.String("key", plant.ImagePath), slog.Any("error", removeErr))
			}
		}

		return nil, errors.Wrap(err, "failed to create plant")
	}

	srv.log(ctx).Info("Plant created", slog.Any("plantID", plant.ID), slog.String("name", plant.Name))

	return plant, nil
}

// UpdatePlant replaces the mutable fields of an existing plant. A new image
// replaces the old one; the old blob is removed after the update commits.
func (srv *catalogService) UpdatePlant(ctx context.Context, plantID uuid.UUID, input *usecase.UpdatePlantInput) (*entity.Plant, error) {
	var v validation.Violations
	name := validation.PlantFields(input.Name, input.Description, input.Price, input.DiscountPercentage, input.StockCount, input.Rating, &v)
	if input.Image != nil {
		validation.PlantImage(input.Image.Filename, input.Image.Size, &v)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlantNotFound, "plant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find plant")
	}

	oldImagePath := ""
	if input.Image != nil {
		imagePath := srv.imagePath(plant.ID, input.Image.Filename)
		if err := srv.imageStore.Save(ctx, imagePath, input.Image.Contents); err != nil {
			return nil, errors.Wrap(err, "failed to store plant image")
		}
		if plant.ImagePath != imagePath {
			oldImagePath = plant.ImagePath
		}
		plant.ImagePath = imagePath
	}

	plant.Name = name
	plant.Description = input.Description
	plant.Price = input.Price
	plant.DiscountPercentage = input.DiscountPercentage
	plant.StockCount = input.StockCount
	plant.Rating = input.Rating

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to update plant")
	}

	if oldImagePath != "" {
		if err := srv.imageStore.Remove(ctx, oldImagePath); err != nil {
			srv.log(ctx).Warn("Failed to remove replaced plant image", slog.String("key", oldImagePath), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Plant updated", slog.Any("plantID", plant.ID))

	return plant, nil
}

// imagePath builds the blob key for a plant image. Keys are namespaced per
// plant so a replacement with the same filename overwrites in place.
func (srv *catalogService) imagePath(plantID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	return fmt.Sprintf("plants/%s%s", plantID, ext)
}
