package interfaces

import (
	"context"

	"checkout_service/internal/domain/entities"
)

// ISettingsRepository stores the single payment settings document.
//
// Get reports found=false when the admin never saved settings.
// Save replaces the whole document.
type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.PaymentSettings, found bool, err error)
	Save(ctx context.Context, s entities.PaymentSettings) error
}
