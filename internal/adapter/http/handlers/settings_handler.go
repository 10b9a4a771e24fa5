package handlers

import (
	"errors"
	"net/http"

	request "checkout_service/internal/adapter/http/dto/request"
	response "checkout_service/internal/adapter/http/dto/response"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/usecase"
	"checkout_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid payment settings", http.StatusBadRequest)
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
	logger  *zap.Logger
}

func NewSettingsHandler(uc usecase.ISettingsUseCase, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{usecase: uc, logger: logging.OrNop(logger).Named("http.settings")}
}

// GetPaymentSettings godoc
// @Summary      Get payment settings
// @Description  API keys are masked.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.PaymentSettingsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /settings/payment [get]
func (h *SettingsHandler) GetPaymentSettings(c *gin.Context) {
	s, err := h.usecase.GetPaymentSettings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSettings(s))
}

// SavePaymentSettings godoc
// @Summary      Replace payment settings
// @Description  Replaces the whole settings document. Omitted API keys keep their stored value.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentSettingsRequest  true  "Settings"
// @Success      200      {object}  response.PaymentSettingsResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /settings/payment [put]
func (h *SettingsHandler) SavePaymentSettings(c *gin.Context) {
	var payload request.PaymentSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	current, err := h.usecase.GetPaymentSettings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	saved, err := h.usecase.SavePaymentSettings(c.Request.Context(), payload.ToEntity(current))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("payment settings saved",
		zap.Bool("is_enabled", saved.IsEnabled),
		zap.Bool("sandbox_mode", saved.SandboxMode),
		zap.Bool("manual_card_processing", saved.ManualCardProcessing),
	)
	c.JSON(http.StatusOK, response.FromPaymentSettings(saved))
}

func (h *SettingsHandler) fail(c *gin.Context, err error) {
	appErr := mapSettingsError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("settings request failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidManualCardStatus), errors.Is(err, usecase.ErrMissingManualCardStatus):
		return pkg.NewDomainErrorSimple("INVALID_MANUAL_CARD_STATUS", "Manual card status must be a known status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoPaymentMethodEnabled):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD_ENABLED", "At least one payment method must be enabled", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
