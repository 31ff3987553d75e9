package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "plantstore/internal/delivery/http/validator"
	"plantstore/internal/domain/entity"
	mockUC "plantstore/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestContext(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/cart/add/item", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestCartHandler_AddItem_Returns200(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{
		CartUC: cartUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	userID := uuid.New()
	plantID := uuid.New()
	item := &entity.CartItem{
		ID:        uuid.New(),
		ProductID: plantID,
		Quantity:  1,
		Product: &entity.Plant{
			ID:    plantID,
			Name:  "Monstera Deliciosa",
			Price: decimal.RequireFromString("24.99"),
		},
	}
	cartUC.EXPECT().
		AddItem(mock.Anything, userID, plantID).
		Return(item, nil)

	c, rec := newCartTestContext(t, userID, `{"plant_id":"`+plantID.String()+`"}`)
	require.NoError(t, h.AddItem(c))

	// Adding to the cart reports 200, not 201.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Plant added to cart")
	assert.Contains(t, rec.Body.String(), `"quantity":1`)
}
