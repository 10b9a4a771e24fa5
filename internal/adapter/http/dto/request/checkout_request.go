package request

import (
	"strings"

	"checkout_service/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

func (r CustomerRequest) ToEntity() entities.CustomerSnapshot {
	return entities.CustomerSnapshot{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Document: strings.TrimSpace(r.Document),
		Phone:    strings.TrimSpace(r.Phone),
	}
}

// CardRequest is the card form. Number and CVV are only used to validate and
// describe the card; Token is what the provider charges.
type CardRequest struct {
	HolderName   string `json:"holder_name" binding:"required"`
	Number       string `json:"number" binding:"required"`
	ExpiryMonth  int    `json:"expiry_month" binding:"required"`
	ExpiryYear   int    `json:"expiry_year" binding:"required"`
	CVV          string `json:"cvv" binding:"required"`
	Installments int    `json:"installments"`
	Token        string `json:"token"`
}

// CardCheckoutRequest is the body of POST /v1/checkout/card.
//
// `payment_id` is optional: a client that retries a submission sends back the
// id of the first response so the attempt is recognised as a duplicate.
type CardCheckoutRequest struct {
	PaymentID string          `json:"payment_id"`
	ProductID string          `json:"product_id" binding:"required"`
	Customer  CustomerRequest `json:"customer"`
	Card      CardRequest     `json:"card"`
}

// PixCheckoutRequest is the body of POST /v1/checkout/pix.
type PixCheckoutRequest struct {
	PaymentID string          `json:"payment_id"`
	ProductID string          `json:"product_id" binding:"required"`
	Customer  CustomerRequest `json:"customer"`
}
