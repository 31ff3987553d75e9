package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"plantstore/internal/delivery/http/response"
	"plantstore/internal/domain/entity"
	domainerrors "plantstore/internal/domain/errors"
	"plantstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PlantHandlerParams holds dependencies for PlantHandler, injected by Fx.
type PlantHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// PlantHandler holds dependencies for catalog-related handlers.
type PlantHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler.
func NewPlantHandler(params PlantHandlerParams) *PlantHandler {
	return &PlantHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// PlantResponse is the serialized catalog entry, including the derived
// discounted_price and in_stock fields.
type PlantResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage int             `json:"discount_percentage"`
	DiscountedPrice    decimal.Decimal `json:"discounted_price"`
	StockCount         int             `json:"stock_count"`
	InStock            bool            `json:"in_stock"`
	Rating             float64         `json:"rating"`
	ImagePath          string          `json:"image,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ListPlants handles the catalog listing request.
func (h *PlantHandler) ListPlants(c echo.Context) error {
	plants, err := h.catalogUC.ListPlants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponses(plants), "Plants retrieved successfully")
}

// GetPlant handles the single catalog entry request.
func (h *PlantHandler) GetPlant(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "PLANT_NOT_FOUND", "Plant not found.")
	}

	plant, err := h.catalogUC.GetPlant(c.Request().Context(), plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "Plant retrieved successfully")
}

// CreatePlant handles the staff-only multipart creation request.
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	fields, image, err := h.bindPlantForm(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeUpload(image)

	input := &usecase.CreatePlantInput{
		Name:               fields.name,
		Description:        fields.description,
		Price:              fields.price,
		DiscountPercentage: fields.discount,
		StockCount:         fields.stock,
		Rating:             fields.rating,
		Image:              uploadOf(image),
	}

	plant, err := h.catalogUC.CreatePlant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlantResponse(plant), "Plant created successfully")
}

// UpdatePlant handles the staff-only multipart update request.
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "PLANT_NOT_FOUND", "Plant not found.")
	}

	fields, image, err := h.bindPlantForm(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeUpload(image)

	input := &usecase.UpdatePlantInput{
		Name:               fields.name,
		Description:        fields.description,
		Price:              fields.price,
		DiscountPercentage: fields.discount,
		StockCount:         fields.stock,
		Rating:             fields.rating,
		Image:              uploadOf(image),
	}

	plant, err := h.catalogUC.UpdatePlant(c.Request().Context(), plantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "Plant updated successfully")
}

// plantFormFields carries the parsed multipart form values.
type plantFormFields struct {
	name        string
	description string
	price       decimal.Decimal
	discount    int
	stock       int
	rating      float64
}

// openedUpload pairs the multipart file with its open reader so the handler
// can close it after the usecase consumed the stream.
type openedUpload struct {
	filename string
	size     int64
	file     multipart.File
}

// bindPlantForm parses the multipart fields of a create/update request.
// Malformed numbers are reported through the same flat violation list as the
// domain validation rules.
func (h *PlantHandler) bindPlantForm(c echo.Context) (*plantFormFields, *openedUpload, error) {
	fields := &plantFormFields{
		name:        c.FormValue("name"),
		description: c.FormValue("description"),
	}

	var violations []string

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		violations = append(violations, "The price field must be a valid number.")
	}
	fields.price = price

	if raw := c.FormValue("discount_percentage"); raw != "" {
		fields.discount, err = strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, "The discount_percentage field must be a whole number.")
		}
	}

	if raw := c.FormValue("stock_count"); raw != "" {
		fields.stock, err = strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, "The stock_count field must be a whole number.")
		}
	}

	if raw := c.FormValue("rating"); raw != "" {
		fields.rating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			violations = append(violations, "The rating field must be a valid number.")
		}
	}

	if len(violations) > 0 {
		return nil, nil, domainerrors.NewValidationError(violations...)
	}

	upload, err := h.openImage(c)
	if err != nil {
		return nil, nil, err
	}

	return fields, upload, nil
}

// openImage opens the optional "image" form file.
func (h *PlantHandler) openImage(c echo.Context) (*openedUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read image form file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}

	return &openedUpload{
		filename: fileHeader.Filename,
		size:     fileHeader.Size,
		file:     file,
	}, nil
}

func uploadOf(upload *openedUpload) *usecase.ImageUpload {
	if upload == nil {
		return nil
	}

	return &usecase.ImageUpload{
		Filename: upload.filename,
		Size:     upload.size,
		Contents: upload.file,
	}
}

func closeUpload(upload *openedUpload) {
	if upload != nil {
		_ = upload.file.Close()
	}
}

func toPlantResponse(plant *entity.Plant) PlantResponse {
	return PlantResponse{
		ID:                 plant.ID,
		Name:               plant.Name,
		Description:        plant.Description,
		Price:              plant.Price,
		DiscountPercentage: plant.DiscountPercentage,
		DiscountedPrice:    plant.DiscountedPrice(),
		StockCount:         plant.StockCount,
		InStock:            plant.InStock(),
		Rating:             plant.Rating,
		ImagePath:          plant.ImagePath,
		CreatedAt:          plant.CreatedAt,
	}
}

func toPlantResponses(plants []*entity.Plant) []PlantResponse {
	responses := make([]PlantResponse, 0, len(plants))
	for _, plant := range plants {
		responses = append(responses, toPlantResponse(plant))
	}

	return responses
}
