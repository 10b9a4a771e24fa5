package response

import (
	"time"

	"checkout_service/internal/domain/entities"
)

type ProductResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Price                string    `json:"price"`
	IsDigital            bool      `json:"is_digital"`
	OverrideGlobalStatus bool      `json:"override_global_status"`
	CustomManualStatus   string    `json:"custom_manual_status,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Price:                p.Price.StringFixed(2),
		IsDigital:            p.IsDigital,
		OverrideGlobalStatus: p.OverrideGlobalStatus,
		CustomManualStatus:   p.CustomManualStatus,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
