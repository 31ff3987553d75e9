package postgres

import (
	"context"

	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/domain/repository"
	"plantstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the repository.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{
		db: db,
	}
}

// FindByID retrieves a plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// FindAll retrieves every catalog entry, newest first.
func (repo *plantRepository) FindAll(ctx context.Context) ([]*entity.Plant, error) {
	var plantModels []*model.PlantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&plantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	plants := make([]*entity.Plant, 0, len(plantModels))
	for _, plantM := range plantModels {
		plants = append(plants, toPlantDomain(plantM))
	}

	return plants, nil
}

// Create persists a new plant.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "plant violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// Update modifies an existing plant.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plantM.ID).
		Updates(map[string]any{
			"name":                plantM.Name,
			"description":         plantM.Description,
			"price":               plantM.Price,
			"discount_percentage": plantM.DiscountPercentage,
			"stock_count":         plantM.StockCount,
			"rating":              plantM.Rating,
			"image_path":          plantM.ImagePath,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		StockCount:         data.StockCount,
		Rating:             data.Rating,
		ImagePath:          data.ImagePath,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		StockCount:         data.StockCount,
		Rating:             data.Rating,
		ImagePath:          data.ImagePath,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
