package entities

import "time"

// PaymentSettings is the process-wide payment configuration edited by the admin.
//
// It is replaced as a whole on save. Settlement works on a value copy taken
// once at the start of an attempt, so a concurrent save never changes an
// in-progress payment.
type PaymentSettings struct {
	IsEnabled       bool `json:"is_enabled"`
	SandboxMode     bool `json:"sandbox_mode"`
	AllowPix        bool `json:"allow_pix"`
	AllowCreditCard bool `json:"allow_credit_card"`

	ManualCardProcessing bool   `json:"manual_card_processing"`
	ManualCardStatus     string `json:"manual_card_status,omitempty"`
	ManualPixPage        bool   `json:"manual_pix_page"`

	SandboxAPIKey    string `json:"sandbox_api_key,omitempty"`
	ProductionAPIKey string `json:"production_api_key,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPaymentSettings is used until the admin saves a settings document.
func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		IsEnabled:       true,
		SandboxMode:     true,
		AllowPix:        true,
		AllowCreditCard: true,
	}
}

// ActiveAPIKey returns the sandbox or production key depending on SandboxMode.
// The two keys are never mixed.
func (s PaymentSettings) ActiveAPIKey() string {
	if s.SandboxMode {
		return s.SandboxAPIKey
	}
	return s.ProductionAPIKey
}
