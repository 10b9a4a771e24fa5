package response

import (
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
)

// PaymentSettingsResponse never carries the API keys in clear text.
type PaymentSettingsResponse struct {
	IsEnabled            bool      `json:"is_enabled"`
	SandboxMode          bool      `json:"sandbox_mode"`
	AllowPix             bool      `json:"allow_pix"`
	AllowCreditCard      bool      `json:"allow_credit_card"`
	ManualCardProcessing bool      `json:"manual_card_processing"`
	ManualCardStatus     string    `json:"manual_card_status,omitempty"`
	ManualPixPage        bool      `json:"manual_pix_page"`
	SandboxAPIKey        string    `json:"sandbox_api_key,omitempty"`
	ProductionAPIKey     string    `json:"production_api_key,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromPaymentSettings(s entities.PaymentSettings) PaymentSettingsResponse {
	return PaymentSettingsResponse{
		IsEnabled:            s.IsEnabled,
		SandboxMode:          s.SandboxMode,
		AllowPix:             s.AllowPix,
		AllowCreditCard:      s.AllowCreditCard,
		ManualCardProcessing: s.ManualCardProcessing,
		ManualCardStatus:     s.ManualCardStatus,
		ManualPixPage:        s.ManualPixPage,
		SandboxAPIKey:        MaskSecret(s.SandboxAPIKey),
		ProductionAPIKey:     MaskSecret(s.ProductionAPIKey),
		UpdatedAt:            s.UpdatedAt,
	}
}

// MaskSecret keeps the last four characters of a key.
func MaskSecret(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
