package usecase

import (
	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"

	"go.uber.org/zap"
)

// StatusNormalizer folds raw status text (provider responses, admin manual
// configuration) into the canonical vocabulary.
type StatusNormalizer struct {
	logger *zap.Logger
}

func NewStatusNormalizer(logger *zap.Logger) *StatusNormalizer {
	return &StatusNormalizer{logger: logging.OrNop(logger).Named("payment.status")}
}

// Resolve never fails. Empty or unrecognised input yields PENDING and a
// warning, so a typo in the admin configuration can never silently approve or
// decline a payment.
func (n *StatusNormalizer) Resolve(raw string) entities.PaymentStatus {
	status, known := entities.NormalizeStatus(raw)
	if !known {
		n.logger.Warn("unknown payment status, falling back to pending",
			zap.String("raw_status", raw),
			zap.String("status", string(status)),
		)
	}
	return status
}
