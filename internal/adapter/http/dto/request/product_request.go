package request

import (
	"strings"

	"checkout_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	IsDigital            bool            `json:"is_digital"`
	OverrideGlobalStatus bool            `json:"override_global_status"`
	CustomManualStatus   string          `json:"custom_manual_status"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:                 strings.TrimSpace(r.Name),
		Description:          strings.TrimSpace(r.Description),
		Price:                r.Price,
		IsDigital:            r.IsDigital,
		OverrideGlobalStatus: r.OverrideGlobalStatus,
		CustomManualStatus:   strings.TrimSpace(r.CustomManualStatus),
	}
}
