package response

import (
	"time"

	"checkout_service/internal/domain/entities"
)

type CustomerResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type OrderProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	IsDigital bool   `json:"is_digital"`
}

type OrderResponse struct {
	ID                string               `json:"id"`
	PaymentID         string               `json:"payment_id"`
	ProviderPaymentID string               `json:"provider_payment_id,omitempty"`
	PaymentMethod     string               `json:"payment_method"`
	PaymentStatus     string               `json:"payment_status"`
	DeviceType        string               `json:"device_type"`
	Customer          CustomerResponse     `json:"customer"`
	Product           OrderProductResponse `json:"product"`
	CardBrand         string               `json:"card_brand,omitempty"`
	CardLast4         string               `json:"card_last4,omitempty"`
	Installments      int                  `json:"installments,omitempty"`
	PixExpirationDate *time.Time           `json:"pix_expiration_date,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		PaymentID:         o.PaymentID,
		ProviderPaymentID: o.ProviderPaymentID,
		PaymentMethod:     string(o.PaymentMethod),
		PaymentStatus:     string(o.PaymentStatus),
		DeviceType:        string(o.DeviceType),
		Customer: CustomerResponse{
			Name:     o.Customer.Name,
			Email:    o.Customer.Email,
			Document: o.Customer.Document,
			Phone:    o.Customer.Phone,
		},
		Product: OrderProductResponse{
			ID:        o.Product.ID,
			Name:      o.Product.Name,
			Price:     o.Product.Price.StringFixed(2),
			IsDigital: o.Product.IsDigital,
		},
		CardBrand:         string(o.CardBrand),
		CardLast4:         o.CardLast4,
		Installments:      o.Installments,
		PixExpirationDate: o.PixExpirationDate,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
