package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/usecase/interfaces"
	"checkout_service/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentConfiguration = errors.New("payment configuration error")
	ErrPaymentsDisabled     = fmt.Errorf("%w: payments are disabled", ErrPaymentConfiguration)
	ErrCardPaymentsDisabled = fmt.Errorf("%w: card payments are disabled", ErrPaymentConfiguration)
	ErrPixPaymentsDisabled  = fmt.Errorf("%w: pix payments are disabled", ErrPaymentConfiguration)
	ErrMissingAPIKey        = fmt.Errorf("%w: no api key configured", ErrPaymentConfiguration)
	ErrGatewayNotConfigured = fmt.Errorf("%w: payment gateway not configured", ErrPaymentConfiguration)
	ErrInvalidCardData      = errors.New("invalid card data")
)

const declinedMessage = "payment declined"

// CardPaymentInput is the card form data of one attempt.
//
// PaymentID is optional: when the client retries a submission it sends back
// the id it got the first time so the duplicate guard can recognise it. Token
// is the provider card token produced client-side; without it the payment is
// never sent to the provider.
type CardPaymentInput struct {
	PaymentID    string
	HolderName   string
	Number       string
	ExpiryMonth  int
	ExpiryYear   int
	CVV          string
	Installments int
	Token        string
	Customer     entities.CustomerSnapshot
}

// ICardSettlementUseCase settles a card payment. It does not persist anything:
// the caller records the order from the returned result.
type ICardSettlementUseCase interface {
	Settle(ctx context.Context, settings entities.PaymentSettings, card CardPaymentInput, product entities.Product) (entities.PaymentResult, error)
}

type CardSettlementUseCase struct {
	gateway         interfaces.IPaymentGateway
	normalizer      *StatusNormalizer
	resolver        *ManualOverrideResolver
	providerTimeout time.Duration
	newID           func() string
	now             func() time.Time
	logger          *zap.Logger
}

var _ ICardSettlementUseCase = (*CardSettlementUseCase)(nil)

func NewCardSettlementUseCase(gateway interfaces.IPaymentGateway, providerTimeout time.Duration, logger *zap.Logger) *CardSettlementUseCase {
	logger = logging.OrNop(logger)
	return &CardSettlementUseCase{
		gateway:         gateway,
		normalizer:      NewStatusNormalizer(logger),
		resolver:        NewManualOverrideResolver(logger),
		providerTimeout: providerTimeout,
		newID:           uuid.NewString,
		now:             time.Now,
		logger:          logger.Named("payment.card"),
	}
}

// Settle runs one card attempt: validate, detect brand, assign the payment id,
// resolve the status (manual rule, provider or automatic) and build the result.
//
// A decline is not an error: the result has Success=false and Status=REJECTED
// and the returned error is nil. Configuration, validation and provider
// failures return both a failed result and an error.
func (u *CardSettlementUseCase) Settle(ctx context.Context, settings entities.PaymentSettings, card CardPaymentInput, product entities.Product) (entities.PaymentResult, error) {
	result := entities.PaymentResult{
		Method:    entities.PaymentMethodCard,
		PaymentID: strings.TrimSpace(card.PaymentID),
		Timestamp: u.now().UTC(),
	}

	if !settings.IsEnabled {
		return u.fail(result, entities.FailureKindConfiguration, ErrPaymentsDisabled)
	}
	if !settings.AllowCreditCard {
		return u.fail(result, entities.FailureKindConfiguration, ErrCardPaymentsDisabled)
	}

	number := validation.SanitizeCardNumber(card.Number)
	if err := validation.ValidateCard(card.HolderName, number, card.ExpiryMonth, card.ExpiryYear, card.CVV, result.Timestamp); err != nil {
		return u.fail(result, entities.FailureKindValidation, fmt.Errorf("%w: %w", ErrInvalidCardData, err))
	}

	brand := entities.DetectCardBrand(number)
	if result.PaymentID == "" {
		result.PaymentID = u.newID()
	}
	installments := card.Installments
	if installments < 1 {
		installments = 1
	}
	result.Card = &entities.CardPaymentDetails{
		Brand:        brand,
		Last4:        validation.Last4(number),
		HolderName:   strings.TrimSpace(card.HolderName),
		Installments: installments,
	}

	log := u.logger.With(zap.String("payment_id", result.PaymentID), zap.String("product_id", product.ID))

	decision := u.resolver.Resolve(OverrideInput{
		UseCustomProcessing:    product.OverrideGlobalStatus,
		ProductManualStatus:    product.CustomManualStatus,
		GlobalManualProcessing: settings.ManualCardProcessing,
		GlobalManualStatus:     settings.ManualCardStatus,
	})
	result.StatusSource = decision.Source

	switch {
	case !decision.Automatic():
		result.Status = u.normalizer.Resolve(decision.RawStatus)
	case u.gateway == nil || strings.TrimSpace(card.Token) == "":
		log.Info("no provider card token, simulating automatic approval", zap.Bool("gateway_configured", u.gateway != nil))
		result.Status = u.normalizer.Resolve(decision.RawStatus)
	default:
		apiKey := strings.TrimSpace(settings.ActiveAPIKey())
		if apiKey == "" {
			return u.fail(result, entities.FailureKindConfiguration, ErrMissingAPIKey)
		}

		payment, err := u.createProviderPayment(ctx, apiKey, interfaces.ProviderPaymentRequest{
			Method:            entities.PaymentMethodCard,
			Amount:            product.Price,
			Description:       product.Name,
			ExternalReference: result.PaymentID,
			Payer:             providerCustomer(card.Customer),
			CardToken:         strings.TrimSpace(card.Token),
			CardMethodID:      brand.ProviderMethodID(),
			Installments:      installments,
		})
		if err != nil {
			return u.fail(result, entities.FailureKindProvider, err)
		}
		result.ProviderPaymentID = payment.ID
		result.StatusSource = entities.StatusSourceProvider
		result.Status = u.normalizer.Resolve(payment.Status)
	}

	if result.Status.IsRejected() {
		result.Success = false
		result.Error = declinedMessage
		result.ErrorKind = entities.FailureKindDeclined
		log.Info("card payment declined", zap.String("status_source", string(result.StatusSource)))
		return result, nil
	}

	result.Success = true
	log.Info("card payment settled",
		zap.String("status", string(result.Status)),
		zap.String("status_source", string(result.StatusSource)),
		zap.String("brand", string(brand)),
	)
	return result, nil
}

func (u *CardSettlementUseCase) createProviderPayment(ctx context.Context, apiKey string, req interfaces.ProviderPaymentRequest) (interfaces.ProviderPayment, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.providerTimeout)
	defer cancel()

	payment, err := u.gateway.CreatePayment(callCtx, apiKey, req)
	if err != nil {
		return interfaces.ProviderPayment{}, newProviderError("create card payment", err)
	}
	return payment, nil
}

func (u *CardSettlementUseCase) fail(result entities.PaymentResult, kind entities.FailureKind, err error) (entities.PaymentResult, error) {
	result.Success = false
	result.Error = err.Error()
	result.ErrorKind = kind

	fields := []zap.Field{zap.String("payment_id", result.PaymentID), zap.String("error_kind", string(kind)), zap.Error(err)}
	if kind == entities.FailureKindProvider {
		u.logger.Error("card payment failed", fields...)
	} else {
		u.logger.Warn("card payment refused", fields...)
	}
	return result, err
}

func providerCustomer(c entities.CustomerSnapshot) interfaces.ProviderCustomer {
	return interfaces.ProviderCustomer{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Document: strings.TrimSpace(c.Document),
		Phone:    strings.TrimSpace(c.Phone),
	}
}
