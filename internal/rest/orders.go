package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"suplementosPro/domain"
	"suplementosPro/pkg/logger"
	"suplementosPro/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CheckoutService interface {
		PlaceOrder(ctx context.Context, userID uint, shippingAddress, paymentMethod string) (domain.Order, error)
		GetAllOrders(ctx context.Context, userID uint) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID uint64, userID uint) (domain.Order, []domain.OrderItem, error)
	}

	OrdersHandler struct {
		checkoutService CheckoutService
		validate        *validator.Validate
		timeout         time.Duration
	}

	CheckoutRequest struct {
		ShippingAddress string `json:"shipping_address" validate:"required"`
		PaymentMethod   string `json:"payment_method"`
	}
)

func NewOrdersHandler(checkoutService CheckoutService) *OrdersHandler {
	return &OrdersHandler{
		checkoutService: checkoutService,
		validate:        validator.New(),
		timeout:         15 * time.Second,
	}
}

func (h *OrdersHandler) Checkout(c echo.Context) error {
	start := time.Now()
	metrics.CheckoutTotal.Inc()
	defer func() {
		metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	}()

	userID := c.Get("user_id").(uint)

	var request CheckoutRequest

	if err := c.Bind(&request); err != nil {
		metrics.CheckoutFailures.Inc()
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		metrics.CheckoutFailures.Inc()
		logger.Error("Failed to validate checkout request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.checkoutService.PlaceOrder(ctx, userID, request.ShippingAddress, request.PaymentMethod)
	if err != nil {
		metrics.CheckoutFailures.Inc()
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		default:
			logger.Error("Failed to place order", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	metrics.OrdersPlaced.Inc()

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Order placed successfully",
		"order_id":  order.ID,
		"reference": order.Reference,
		"total":     order.Total,
	})
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.checkoutService.GetAllOrders(ctx, userID)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, items, err := h.checkoutService.GetOrder(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order": order,
		"items": items,
	})
}
