package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPixAmount   = errors.New("invalid pix amount")
	ErrInvalidPixCustomer = errors.New("invalid pix customer")
)

type PixPaymentInput struct {
	PaymentID   string
	Customer    entities.CustomerSnapshot
	Amount      decimal.Decimal
	Description string
}

// IPixSettlementUseCase requests a PIX charge. Failures are reported inside the
// result, never as an error.
type IPixSettlementUseCase interface {
	Settle(ctx context.Context, settings entities.PaymentSettings, in PixPaymentInput) entities.PaymentResult
}

type PixSettlementUseCase struct {
	gateway              interfaces.IPaymentGateway
	providerTimeout      time.Duration
	expiration           time.Duration
	manualPageExpiration time.Duration
	newID                func() string
	now                  func() time.Time
	logger               *zap.Logger
}

var _ IPixSettlementUseCase = (*PixSettlementUseCase)(nil)

// NewPixSettlementUseCase builds the PIX flow. expiration bounds provider QR
// codes; manualPageExpiration bounds the out-of-band payment window.
func NewPixSettlementUseCase(gateway interfaces.IPaymentGateway, providerTimeout, expiration, manualPageExpiration time.Duration, logger *zap.Logger) *PixSettlementUseCase {
	return &PixSettlementUseCase{
		gateway:              gateway,
		providerTimeout:      providerTimeout,
		expiration:           expiration,
		manualPageExpiration: manualPageExpiration,
		newID:                uuid.NewString,
		now:                  time.Now,
		logger:               logging.OrNop(logger).Named("payment.pix"),
	}
}

// Settle always settles a successful charge as PENDING: PIX is confirmed later,
// out of band.
func (u *PixSettlementUseCase) Settle(ctx context.Context, settings entities.PaymentSettings, in PixPaymentInput) entities.PaymentResult {
	now := u.now().UTC()
	result := entities.PaymentResult{
		Method:    entities.PaymentMethodPix,
		PaymentID: strings.TrimSpace(in.PaymentID),
		Timestamp: now,
	}

	if !settings.IsEnabled {
		return u.fail(result, entities.FailureKindConfiguration, ErrPaymentsDisabled)
	}
	if !settings.AllowPix {
		return u.fail(result, entities.FailureKindConfiguration, ErrPixPaymentsDisabled)
	}
	if !in.Amount.IsPositive() {
		return u.fail(result, entities.FailureKindValidation, ErrInvalidPixAmount)
	}
	if strings.TrimSpace(in.Customer.Email) == "" {
		return u.fail(result, entities.FailureKindValidation, ErrInvalidPixCustomer)
	}

	if result.PaymentID == "" {
		result.PaymentID = u.newID()
	}
	log := u.logger.With(zap.String("payment_id", result.PaymentID))

	if settings.ManualPixPage {
		result.Success = true
		result.Status = entities.PaymentStatusPending
		result.Pix = &entities.PixPaymentDetails{
			ExpirationDate: now.Add(u.manualPageExpiration),
			ManualPixPage:  true,
		}
		log.Info("manual pix page payment created", zap.Time("expiration_date", result.Pix.ExpirationDate))
		return result
	}

	if u.gateway == nil {
		return u.fail(result, entities.FailureKindConfiguration, ErrGatewayNotConfigured)
	}
	apiKey := strings.TrimSpace(settings.ActiveAPIKey())
	if apiKey == "" {
		return u.fail(result, entities.FailureKindConfiguration, ErrMissingAPIKey)
	}

	callCtx, cancel := context.WithTimeout(ctx, u.providerTimeout)
	defer cancel()

	payer := providerCustomer(in.Customer)
	customerID, err := u.gateway.CreateCustomer(callCtx, apiKey, payer)
	if err != nil {
		// The charge can still be created with the payer e-mail alone.
		log.Warn("provider customer creation failed, continuing without customer id", zap.Error(err))
		customerID = ""
	}

	requestedExpiry := now.Add(u.expiration)
	payment, err := u.gateway.CreatePayment(callCtx, apiKey, interfaces.ProviderPaymentRequest{
		Method:            entities.PaymentMethodPix,
		Amount:            in.Amount,
		Description:       in.Description,
		ExternalReference: result.PaymentID,
		CustomerID:        customerID,
		Payer:             payer,
		ExpiresAt:         &requestedExpiry,
	})
	if err != nil {
		return u.fail(result, entities.FailureKindProvider, newProviderError("create pix payment", err))
	}
	result.ProviderPaymentID = payment.ID

	qr, err := u.gateway.GetPixQrCode(callCtx, apiKey, payment.ID)
	if err != nil {
		return u.fail(result, entities.FailureKindProvider, newProviderError("get pix qr code", err))
	}
	if strings.TrimSpace(qr.Payload) == "" {
		return u.fail(result, entities.FailureKindProvider, newProviderError("get pix qr code", errors.New("empty qr code payload")))
	}

	expiration := qr.ExpirationDate.UTC()
	if qr.ExpirationDate.IsZero() {
		expiration = requestedExpiry
	}

	result.Success = true
	result.Status = entities.PaymentStatusPending
	result.StatusSource = entities.StatusSourceProvider
	result.Pix = &entities.PixPaymentDetails{
		QRCodePayload:  qr.Payload,
		QRCodeImage:    qr.EncodedImage,
		ExpirationDate: expiration,
	}
	log.Info("pix charge created",
		zap.String("provider_payment_id", payment.ID),
		zap.String("provider_status", payment.Status),
		zap.Time("expiration_date", expiration),
	)
	return result
}

func (u *PixSettlementUseCase) fail(result entities.PaymentResult, kind entities.FailureKind, err error) entities.PaymentResult {
	result.Success = false
	result.Error = err.Error()
	result.ErrorKind = kind

	fields := []zap.Field{zap.String("payment_id", result.PaymentID), zap.String("error_kind", string(kind)), zap.Error(err)}
	if kind == entities.FailureKindProvider {
		u.logger.Error("pix payment failed", fields...)
	} else {
		u.logger.Warn("pix payment refused", fields...)
	}
	return result
}
