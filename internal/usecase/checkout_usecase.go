package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentDeclined   = errors.New("payment declined")
	ErrOrderProcessing   = errors.New("processing error")
	ErrInvalidCustomer   = errors.New("invalid customer")
	ErrInvalidPixRequest = errors.New("invalid pix request")
)

type CardCheckoutCommand struct {
	ProductID  string
	Customer   entities.CustomerSnapshot
	Card       CardPaymentInput
	DeviceType entities.DeviceType
}

// PixCheckoutCommand buys one product with PIX. PaymentID is optional and
// only used to recognise a repeated submission.
type PixCheckoutCommand struct {
	PaymentID  string
	ProductID  string
	Customer   entities.CustomerSnapshot
	DeviceType entities.DeviceType
}

// CheckoutResult is what the storefront gets back from one attempt.
//
// When Duplicated is true no order was created by this call. Order then holds
// the previously recorded order if it could be found.
type CheckoutResult struct {
	Payment    entities.PaymentResult
	Order      *entities.Order
	Duplicated bool
	Redirect   entities.RedirectTarget
}

// ICheckoutUseCase runs a full settlement attempt: settings snapshot, product,
// settlement, order record and redirect target.
type ICheckoutUseCase interface {
	PayWithCard(ctx context.Context, cmd CardCheckoutCommand) (CheckoutResult, error)
	PayWithPix(ctx context.Context, cmd PixCheckoutCommand) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	settings ISettingsUseCase
	products IProductUseCase
	orders   IOrderUseCase
	card     ICardSettlementUseCase
	pix      IPixSettlementUseCase
	guard    *SubmissionGuard
	newID    func() string
	logger   *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the checkout. guard is owned by the caller; pass
// the same instance to every checkout that must share duplicate detection.
func NewCheckoutUseCase(
	settings ISettingsUseCase,
	products IProductUseCase,
	orders IOrderUseCase,
	card ICardSettlementUseCase,
	pix IPixSettlementUseCase,
	guard *SubmissionGuard,
	logger *zap.Logger,
) *CheckoutUseCase {
	if guard == nil {
		guard = NewSubmissionGuard()
	}
	return &CheckoutUseCase{
		settings: settings,
		products: products,
		orders:   orders,
		card:     card,
		pix:      pix,
		guard:    guard,
		newID:    uuid.NewString,
		logger:   logging.OrNop(logger).Named("checkout"),
	}
}

// PayWithCard returns ErrPaymentDeclined together with a populated result when
// the payment was declined: the declined attempt is still recorded as an order.
func (u *CheckoutUseCase) PayWithCard(ctx context.Context, cmd CardCheckoutCommand) (CheckoutResult, error) {
	if err := validateCustomer(cmd.Customer); err != nil {
		return CheckoutResult{}, err
	}
	paymentID, claimed := u.claim(cmd.Card.PaymentID)
	if !claimed {
		return u.duplicated(ctx, entities.PaymentResult{Method: entities.PaymentMethodCard, PaymentID: paymentID})
	}

	settings, product, err := u.load(ctx, cmd.ProductID)
	if err != nil {
		u.guard.Release(paymentID)
		return CheckoutResult{}, err
	}

	card := cmd.Card
	card.PaymentID = paymentID
	card.Customer = cmd.Customer
	payment, err := u.card.Settle(ctx, settings, card, product)
	if err != nil {
		u.releaseUnsettled(paymentID, payment.ErrorKind)
		return CheckoutResult{Payment: payment}, err
	}

	out, err := u.record(ctx, payment, product, cmd.Customer, cmd.DeviceType)
	if err != nil {
		return out, err
	}
	if payment.Status.IsRejected() {
		return out, ErrPaymentDeclined
	}
	return out, nil
}

// PayWithPix maps PIX failure results to errors so the HTTP layer can pick a
// status code; the failed result is returned alongside.
func (u *CheckoutUseCase) PayWithPix(ctx context.Context, cmd PixCheckoutCommand) (CheckoutResult, error) {
	if err := validateCustomer(cmd.Customer); err != nil {
		return CheckoutResult{}, err
	}
	paymentID, claimed := u.claim(cmd.PaymentID)
	if !claimed {
		return u.duplicated(ctx, entities.PaymentResult{Method: entities.PaymentMethodPix, PaymentID: paymentID})
	}

	settings, product, err := u.load(ctx, cmd.ProductID)
	if err != nil {
		u.guard.Release(paymentID)
		return CheckoutResult{}, err
	}

	payment := u.pix.Settle(ctx, settings, PixPaymentInput{
		PaymentID:   paymentID,
		Customer:    cmd.Customer,
		Amount:      product.Price,
		Description: product.Name,
	})
	if !payment.Success {
		u.releaseUnsettled(paymentID, payment.ErrorKind)
		return CheckoutResult{Payment: payment}, pixFailureError(payment)
	}

	return u.record(ctx, payment, product, cmd.Customer, cmd.DeviceType)
}

// claim reserves the attempt's payment id before anything is settled, so two
// submissions of the same id never both reach the provider. An id is generated
// when the storefront did not send one.
func (u *CheckoutUseCase) claim(supplied string) (string, bool) {
	paymentID := strings.TrimSpace(supplied)
	if paymentID == "" {
		paymentID = u.newID()
	}
	return paymentID, u.guard.Claim(paymentID)
}

func (u *CheckoutUseCase) load(ctx context.Context, productID string) (entities.PaymentSettings, entities.Product, error) {
	settings, err := u.settings.GetPaymentSettings(ctx)
	if err != nil {
		return entities.PaymentSettings{}, entities.Product{}, fmt.Errorf("load payment settings: %w", err)
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.PaymentSettings{}, entities.Product{}, err
	}
	return settings, product, nil
}

// releaseUnsettled frees the id of an attempt refused before the provider was
// called. Provider failures keep the id: the charge may have gone through.
func (u *CheckoutUseCase) releaseUnsettled(paymentID string, kind entities.FailureKind) {
	switch kind {
	case entities.FailureKindConfiguration, entities.FailureKindValidation:
		u.guard.Release(paymentID)
	}
}

// record persists the order for a settled attempt. The payment id stays
// claimed when the write fails: a retry is a new attempt with a new id.
func (u *CheckoutUseCase) record(ctx context.Context, payment entities.PaymentResult, product entities.Product, customer entities.CustomerSnapshot, device entities.DeviceType) (CheckoutResult, error) {
	log := u.logger.With(zap.String("payment_id", payment.PaymentID), zap.String("method", string(payment.Method)))

	order, err := u.orders.CreateOrder(ctx, newOrderFromPayment(payment, product, customer, device))
	if err != nil {
		log.Error("order creation failed",
			zap.String("status", string(payment.Status)),
			zap.String("provider_payment_id", payment.ProviderPaymentID),
			zap.Error(err),
		)
		return CheckoutResult{Payment: payment}, fmt.Errorf("%w: %w", ErrOrderProcessing, err)
	}

	redirect := entities.RedirectFor(order.PaymentStatus)
	log.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.PaymentStatus)),
		zap.String("redirect", string(redirect)),
	)
	return CheckoutResult{Payment: payment, Order: &order, Redirect: redirect}, nil
}

// duplicated answers a repeated submission without settling or creating an
// order. The redirect follows the recorded order when it can be found. A
// recorded decline answers ErrPaymentDeclined again, like the first attempt.
func (u *CheckoutUseCase) duplicated(ctx context.Context, payment entities.PaymentResult) (CheckoutResult, error) {
	log := u.logger.With(zap.String("payment_id", payment.PaymentID), zap.String("method", string(payment.Method)))
	log.Info("duplicate submission, payment id already claimed")

	out := CheckoutResult{Payment: payment, Duplicated: true, Redirect: entities.RedirectFor(payment.Status)}
	orders, err := u.orders.ListByPaymentID(ctx, payment.PaymentID)
	if err != nil {
		log.Warn("recorded order lookup failed", zap.Error(err))
		return out, nil
	}
	if len(orders) == 0 {
		return out, nil
	}

	recorded := orders[0]
	out.Order = &recorded
	out.Payment.Status = recorded.PaymentStatus
	out.Redirect = entities.RedirectFor(recorded.PaymentStatus)
	if recorded.PaymentStatus.IsRejected() {
		out.Payment.ErrorKind = entities.FailureKindDeclined
		out.Payment.Error = declinedMessage
		return out, ErrPaymentDeclined
	}
	out.Payment.Success = true
	return out, nil
}

func validateCustomer(c entities.CustomerSnapshot) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return ErrInvalidCustomer
	}
	return nil
}

func pixFailureError(payment entities.PaymentResult) error {
	switch payment.ErrorKind {
	case entities.FailureKindConfiguration:
		return fmt.Errorf("%w: %s", ErrPaymentConfiguration, payment.Error)
	case entities.FailureKindValidation:
		return fmt.Errorf("%w: %s", ErrInvalidPixRequest, payment.Error)
	}
	return fmt.Errorf("%w: %s", ErrProviderFailure, payment.Error)
}
