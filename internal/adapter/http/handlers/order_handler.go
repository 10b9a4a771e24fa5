package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "checkout_service/internal/adapter/http/dto/request"
	response "checkout_service/internal/adapter/http/dto/response"
	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/usecase"
	"checkout_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOrderStatusPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Status must be one of PENDING, CONFIRMED, ANALYSIS, REJECTED", http.StatusBadRequest)
)

// OrderHandler is the admin view over recorded orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logging.OrNop(logger).Named("http.orders")}
}

// ListOrders godoc
// @Summary      List orders
// @Description  Lists orders newest first. Filter by payment_id to find the order of one attempt.
// @Tags         orders
// @Produce      json
// @Param        payment_id  query     string  false  "Payment id"
// @Success      200         {array}   response.OrderResponse
// @Failure      500         {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var (
		orders []entities.Order
		err    error
	)
	if paymentID := strings.TrimSpace(c.Query("payment_id")); paymentID != "" {
		orders, err = h.usecase.ListByPaymentID(c.Request.Context(), paymentID)
	} else {
		orders, err = h.usecase.ListOrders(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary      Update order status
// @Description  Admin override of the payment status of an order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order id"
// @Param        request  body      request.OrderStatusRequest  true  "New status"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderStatusPayload.HTTPStatus, errInvalidOrderStatusPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("order status updated", zap.String("order_id", order.ID), zap.String("status", string(order.PaymentStatus)))
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary      Delete order
// @Tags         orders
// @Param        id   path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteOrder(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("order deleted", zap.String("order_id", id))
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) fail(c *gin.Context, err error) {
	appErr := mapOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("order request failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return errInvalidOrderStatusPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
