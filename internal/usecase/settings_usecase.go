package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"
)

var (
	ErrInvalidManualCardStatus = errors.New("invalid manual card status")
	ErrNoPaymentMethodEnabled  = errors.New("no payment method enabled")
	ErrMissingManualCardStatus = errors.New("manual card processing requires a manual card status")
)

// ISettingsUseCase manages the payment settings document.
type ISettingsUseCase interface {
	GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, error)
	SavePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
	now  func() time.Time
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, now: time.Now}
}

// GetPaymentSettings returns the stored document, or the defaults when the
// admin never saved one. The returned value is a copy: settlement uses it as
// the frozen snapshot of one attempt.
func (u *SettingsUseCase) GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.PaymentSettings{}, err
	}
	if !found {
		return entities.DefaultPaymentSettings(), nil
	}
	return s, nil
}

// SavePaymentSettings validates the whole document and replaces the stored
// one. Nothing is written when validation fails.
func (u *SettingsUseCase) SavePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error) {
	s.ManualCardStatus = strings.TrimSpace(s.ManualCardStatus)
	s.SandboxAPIKey = strings.TrimSpace(s.SandboxAPIKey)
	s.ProductionAPIKey = strings.TrimSpace(s.ProductionAPIKey)

	if s.ManualCardStatus != "" {
		if _, known := entities.NormalizeStatus(s.ManualCardStatus); !known {
			return entities.PaymentSettings{}, ErrInvalidManualCardStatus
		}
	}
	if s.ManualCardProcessing && s.ManualCardStatus == "" {
		return entities.PaymentSettings{}, ErrMissingManualCardStatus
	}
	if s.IsEnabled && !s.AllowPix && !s.AllowCreditCard {
		return entities.PaymentSettings{}, ErrNoPaymentMethodEnabled
	}

	s.UpdatedAt = u.now().UTC()
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.PaymentSettings{}, err
	}
	return s, nil
}
