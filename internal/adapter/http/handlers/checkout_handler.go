package handlers

import (
	"errors"
	"net/http"

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
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// CheckoutHandler serves the storefront payment forms.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, logger: logging.OrNop(logger).Named("http.checkout")}
}

// PayWithCard godoc
// @Summary      Pay with credit card
// @Description  Settles a card payment for one product and records the order. A declined payment answers 402 with the recorded order.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.CardCheckoutRequest  true  "Card checkout"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  response.CheckoutResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /checkout/card [post]
func (h *CheckoutHandler) PayWithCard(c *gin.Context) {
	var payload request.CardCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("invalid card checkout payload", zap.Error(err))
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	cmd := usecase.CardCheckoutCommand{
		ProductID: payload.ProductID,
		Customer:  payload.Customer.ToEntity(),
		Card: usecase.CardPaymentInput{
			PaymentID:    payload.PaymentID,
			HolderName:   payload.Card.HolderName,
			Number:       payload.Card.Number,
			ExpiryMonth:  payload.Card.ExpiryMonth,
			ExpiryYear:   payload.Card.ExpiryYear,
			CVV:          payload.Card.CVV,
			Installments: payload.Card.Installments,
			Token:        payload.Card.Token,
		},
		DeviceType: entities.DetectDeviceType(c.GetHeader("User-Agent")),
	}

	out, err := h.usecase.PayWithCard(c.Request.Context(), cmd)
	h.respond(c, out, err)
}

// PayWithPix godoc
// @Summary      Pay with PIX
// @Description  Creates a PIX charge (or the manual PIX page) for one product and records the pending order.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.PixCheckoutRequest  true  "PIX checkout"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /checkout/pix [post]
func (h *CheckoutHandler) PayWithPix(c *gin.Context) {
	var payload request.PixCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("invalid pix checkout payload", zap.Error(err))
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.PayWithPix(c.Request.Context(), usecase.PixCheckoutCommand{
		PaymentID:  payload.PaymentID,
		ProductID:  payload.ProductID,
		Customer:   payload.Customer.ToEntity(),
		DeviceType: entities.DetectDeviceType(c.GetHeader("User-Agent")),
	})
	h.respond(c, out, err)
}

func (h *CheckoutHandler) respond(c *gin.Context, out usecase.CheckoutResult, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.FromCheckoutResult(out))
	case errors.Is(err, usecase.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, response.FromCheckoutResult(out))
	default:
		appErr := mapCheckoutError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("checkout failed", zap.String("code", appErr.Code), zap.Error(err))
		} else {
			h.logger.Info("checkout rejected", zap.String("code", appErr.Code), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// mapCheckoutError checks the specific provider classifications before the
// generic provider failure they all wrap.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer), errors.Is(err, usecase.ErrInvalidPixRequest), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardData):
		return pkg.NewDomainErrorSimple("INVALID_CARD_DATA", "Invalid card data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentConfiguration):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFIGURATION_ERROR", "Payments are not available right now", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProviderFailure):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderProcessing):
		return pkg.NewDomainError("ORDER_PROCESSING_ERROR", "Processing error", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
