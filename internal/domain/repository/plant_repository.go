package repository

import (
	"context"
	"errors"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlantNotFound is returned when a catalog entry does not exist.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines the standard operations for catalog persistence.
type PlantRepository interface {
	// FindByID retrieves a single plant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	// FindAll retrieves every catalog entry, newest first.
	FindAll(ctx context.Context) ([]*entity.Plant, error)

	// Create persists a new plant.
	Create(ctx context.Context, plant *entity.Plant) error

	// Update modifies an existing plant.
	Update(ctx context.Context, plant *entity.Plant) error
}
