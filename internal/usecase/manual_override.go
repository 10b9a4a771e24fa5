package usecase

import (
	"strings"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/infrastructure/logging"

	"go.uber.org/zap"
)

// automaticRawStatus is what card payments settle to when no manual rule
// applies and no provider is consulted.
const automaticRawStatus = "CONFIRMED"

// OverrideInput gathers the manual-processing configuration that applies to
// one card payment. Blank statuses count as not configured.
type OverrideInput struct {
	UseCustomProcessing    bool
	ProductManualStatus    string
	GlobalManualProcessing bool
	GlobalManualStatus     string
}

// OverrideDecision carries the raw (not yet normalized) status and the rule
// that produced it.
type OverrideDecision struct {
	RawStatus string
	Source    entities.StatusSource
}

func (d OverrideDecision) Automatic() bool {
	return d.Source == entities.StatusSourceAutomatic
}

// ManualOverrideResolver picks the manual status for a card payment:
// product override first, then the global manual status, then automatic.
type ManualOverrideResolver struct {
	logger *zap.Logger
}

func NewManualOverrideResolver(logger *zap.Logger) *ManualOverrideResolver {
	return &ManualOverrideResolver{logger: logging.OrNop(logger).Named("payment.override")}
}

func (r *ManualOverrideResolver) Resolve(in OverrideInput) OverrideDecision {
	productStatus := strings.TrimSpace(in.ProductManualStatus)
	globalStatus := strings.TrimSpace(in.GlobalManualStatus)

	if in.UseCustomProcessing {
		if productStatus != "" {
			r.logger.Info("using product manual status", zap.String("raw_status", productStatus))
			return OverrideDecision{RawStatus: productStatus, Source: entities.StatusSourceProduct}
		}
		// A product flagged for custom processing without a status falls
		// through to the global rule instead of stopping here.
		r.logger.Info("product custom processing has no status, falling through")
	}

	if in.GlobalManualProcessing {
		if globalStatus != "" {
			r.logger.Info("using global manual status", zap.String("raw_status", globalStatus))
			return OverrideDecision{RawStatus: globalStatus, Source: entities.StatusSourceGlobal}
		}
		r.logger.Info("global manual processing has no status, falling through")
	}

	r.logger.Info("no manual status configured, using automatic processing")
	return OverrideDecision{RawStatus: automaticRawStatus, Source: entities.StatusSourceAutomatic}
}
