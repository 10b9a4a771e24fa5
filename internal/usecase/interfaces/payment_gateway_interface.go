package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"checkout_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ProviderCustomer is the payer data sent to the payment provider.
type ProviderCustomer struct {
	Name     string
	Email    string
	Document string
	Phone    string
}

// ProviderPaymentRequest describes a charge. CardToken and CardMethodID are
// only used for card payments; ExpiresAt only for PIX.
type ProviderPaymentRequest struct {
	Method            entities.PaymentMethod
	Amount            decimal.Decimal
	Description       string
	ExternalReference string
	CustomerID        string
	Payer             ProviderCustomer
	CardToken         string
	CardMethodID      string
	Installments      int
	ExpiresAt         *time.Time
}

// ProviderPayment is the provider's answer. Status is raw provider text and
// must go through status normalization before any business decision.
type ProviderPayment struct {
	ID       string
	Status   string
	Response json.RawMessage
}

// PixQrCode is the PIX artifact attached to a provider payment.
type PixQrCode struct {
	Payload        string
	EncodedImage   string
	ExpirationDate time.Time
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// apiKey is the active credential taken from the payment settings snapshot of
// the current attempt.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, apiKey string, customer ProviderCustomer) (customerID string, err error)
	CreatePayment(ctx context.Context, apiKey string, req ProviderPaymentRequest) (ProviderPayment, error)
	GetPixQrCode(ctx context.Context, apiKey string, providerPaymentID string) (PixQrCode, error)
}
