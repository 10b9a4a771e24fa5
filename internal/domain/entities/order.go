package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "pix"
)

type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

var mobileUserAgentMarkers = []string{"mobile", "android", "iphone", "ipad", "ipod", "windows phone", "opera mini"}

// DetectDeviceType classifies a User-Agent header. Anything not recognised as a
// handheld is a desktop.
func DetectDeviceType(userAgent string) DeviceType {
	ua := strings.ToLower(userAgent)
	for _, marker := range mobileUserAgentMarkers {
		if strings.Contains(ua, marker) {
			return DeviceTypeMobile
		}
	}
	return DeviceTypeDesktop
}

// CustomerSnapshot is the customer data captured at checkout time.
type CustomerSnapshot struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ProductSnapshot is a copy of the product taken when the order is created.
// Later product edits never change existing orders.
type ProductSnapshot struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	IsDigital bool            `json:"is_digital"`
}

// Order is the settlement record persisted once per attempt.
//
// Only PaymentStatus may change after creation, and only through the admin
// status-update operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (payment_id-index): payment_id
type Order struct {
	ID                string           `json:"id"`
	Customer          CustomerSnapshot `json:"customer"`
	Product           ProductSnapshot  `json:"product"`
	PaymentMethod     PaymentMethod    `json:"payment_method"`
	PaymentStatus     PaymentStatus    `json:"payment_status"`
	PaymentID         string           `json:"payment_id"`
	ProviderPaymentID string           `json:"provider_payment_id,omitempty"`
	DeviceType        DeviceType       `json:"device_type"`

	CardBrand    CardBrand `json:"card_brand,omitempty"`
	CardLast4    string    `json:"card_last4,omitempty"`
	Installments int       `json:"installments,omitempty"`

	PixExpirationDate *time.Time `json:"pix_expiration_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
