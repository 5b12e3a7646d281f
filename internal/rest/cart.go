package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"suplementosPro/domain"
	"suplementosPro/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CartService interface {
		AddItem(ctx context.Context, userID uint, productID uint64, quantity int) error
		ViewCart(ctx context.Context, userID uint) (domain.CartView, error)
	}

	CartHandler struct {
		cartService CartService
		validate    *validator.Validate
		timeout     time.Duration
	}

	CartAddRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	}
)

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
		timeout:     10 * time.Second,
	}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request CartAddRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate cart add", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// quantity defaults to 1 like the storefront sends it
	if request.Quantity == 0 {
		request.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.AddItem(ctx, userID, request.ProductID, request.Quantity); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to add cart item", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("Product added to cart"))
}

func (h *CartHandler) ViewCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.cartService.ViewCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to view cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, view)
}
