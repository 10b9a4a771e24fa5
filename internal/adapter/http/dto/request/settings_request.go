package request

import (
	"strings"

	"checkout_service/internal/domain/entities"
)

// PaymentSettingsRequest replaces the whole settings document.
//
// The API keys are pointers: when a key is omitted the stored one is kept, so
// the admin form can be saved without re-typing secrets it never receives back.
type PaymentSettingsRequest struct {
	IsEnabled            bool    `json:"is_enabled"`
	SandboxMode          bool    `json:"sandbox_mode"`
	AllowPix             bool    `json:"allow_pix"`
	AllowCreditCard      bool    `json:"allow_credit_card"`
	ManualCardProcessing bool    `json:"manual_card_processing"`
	ManualCardStatus     string  `json:"manual_card_status"`
	ManualPixPage        bool    `json:"manual_pix_page"`
	SandboxAPIKey        *string `json:"sandbox_api_key"`
	ProductionAPIKey     *string `json:"production_api_key"`
}

// ToEntity builds the document to save on top of the currently stored one.
func (r PaymentSettingsRequest) ToEntity(current entities.PaymentSettings) entities.PaymentSettings {
	s := entities.PaymentSettings{
		IsEnabled:            r.IsEnabled,
		SandboxMode:          r.SandboxMode,
		AllowPix:             r.AllowPix,
		AllowCreditCard:      r.AllowCreditCard,
		ManualCardProcessing: r.ManualCardProcessing,
		ManualCardStatus:     strings.TrimSpace(r.ManualCardStatus),
		ManualPixPage:        r.ManualPixPage,
		SandboxAPIKey:        current.SandboxAPIKey,
		ProductionAPIKey:     current.ProductionAPIKey,
	}
	if r.SandboxAPIKey != nil {
		s.SandboxAPIKey = strings.TrimSpace(*r.SandboxAPIKey)
	}
	if r.ProductionAPIKey != nil {
		s.ProductionAPIKey = strings.TrimSpace(*r.ProductionAPIKey)
	}
	return s
}
