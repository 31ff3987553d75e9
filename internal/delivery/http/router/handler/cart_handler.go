package handler

import (
	"log/slog"
	"net/http"

	"plantstore/internal/delivery/http/middleware"
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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a plant to the cart.
type AddItemRequest struct {
	PlantID uuid.UUID `json:"plant_id" validate:"required"`
}

// CartItemResponse is a serialized cart line with its per-line total.
type CartItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Product    PlantResponse   `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CartResponse is the serialized cart with its aggregates: total_cart_price
// sums the line totals, total_items_count sums the quantities.
type CartResponse struct {
	Items           []CartItemResponse `json:"items"`
	TotalCartPrice  decimal.Decimal    `json:"total_cart_price"`
	TotalItemsCount int                `json:"total_items_count"`
}

// ListItems handles the cart listing request. An empty cart is a success
// with an explicit message, unlike the catalog's empty-as-404 behavior.
func (h *CartHandler) ListItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	contents, err := h.cartUC.ListItems(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if contents.IsEmpty() {
		return response.Success(c, http.StatusOK, toCartResponse(contents), "Your cart is empty.")
	}

	return response.Success(c, http.StatusOK, toCartResponse(contents), "Cart retrieved successfully")
}

// AddItem handles adding a plant to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A plant_id is required")
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, req.PlantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemResponse(item), "Plant added to cart")
}

// RemoveItem handles removing a plant from the cart entirely.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", "The product is not in your cart.")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, plantID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// IncreaseQuantity handles adding one to a cart line's quantity.
func (h *CartHandler) IncreaseQuantity(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", "The product is not in your cart.")
	}

	item, err := h.cartUC.IncreaseQuantity(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemResponse(item), "Quantity increased")
}

// DecreaseQuantity handles subtracting one from a cart line's quantity. At
// quantity one the line is removed and 204 returned instead.
func (h *CartHandler) DecreaseQuantity(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", "The product is not in your cart.")
	}

	item, removed, err := h.cartUC.DecreaseQuantity(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	if removed {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, toCartItemResponse(item), "Quantity decreased")
}

func toCartItemResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		Product:    toPlantResponse(item.Product),
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

func toCartResponse(contents *usecase.CartContents) CartResponse {
	items := make([]CartItemResponse, 0, len(contents.Items))
	for _, item := range contents.Items {
		items = append(items, toCartItemResponse(item))
	}

	return CartResponse{
		Items:           items,
		TotalCartPrice:  contents.TotalCartPrice,
		TotalItemsCount: contents.TotalItemsCount,
	}
}
