package usecase

import (
	"context"
	"io"

	"plantstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageUpload carries an uploaded product image. Size is taken from the
// multipart header and checked against the 10MB limit before the contents
// are read.
type ImageUpload struct {
	Filename string
	Size     int64
	Contents io.Reader
}

// CreatePlantInput defines the data required to add a catalog entry.
// The image is mandatory on create.
type CreatePlantInput struct {
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage int
	StockCount         int
	Rating             float64
	Image              *ImageUpload
}

// UpdatePlantInput defines the data for a full update of a catalog entry.
// A nil Image keeps the stored one.
type UpdatePlantInput struct {
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage int
	StockCount         int
	Rating             float64
	Image              *ImageUpload
}

// CatalogUsecase defines the interface for plant catalog operations. Reads
// are public; writes are restricted to staff at the delivery layer.
type CatalogUsecase interface {
	// ListPlants returns every catalog entry. An empty catalog is reported
	// as not found, deliberately mirroring the storefront's
	// empty-as-absent convention.
	ListPlants(ctx context.Context) ([]*entity.Plant, error)

	// GetPlant returns a single catalog entry by ID.
	GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	// CreatePlant validates and persists a new catalog entry and stores its
	// image under a key derived from the new ID.
	CreatePlant(ctx context.Context, input *CreatePlantInput) (*entity.Plant, error)

	// UpdatePlant validates and persists changes to an existing entry,
	// replacing the stored image when a new one is supplied.
	UpdatePlant(ctx context.Context, id uuid.UUID, input *UpdatePlantInput) (*entity.Plant, error)
}
