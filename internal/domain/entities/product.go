package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a storefront item.
//
// When OverrideGlobalStatus is true, CustomManualStatus (raw vocabulary, e.g.
// APPROVED, DENIED, ANALYSIS) takes precedence over the global manual card
// status for card payments of this product.
type Product struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Price                decimal.Decimal `json:"price"`
	IsDigital            bool            `json:"is_digital"`
	OverrideGlobalStatus bool            `json:"override_global_status"`
	CustomManualStatus   string          `json:"custom_manual_status,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		IsDigital: p.IsDigital,
	}
}
