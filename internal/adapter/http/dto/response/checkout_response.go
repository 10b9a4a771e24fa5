package response

import (
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase"
)

type RedirectResponse struct {
	Target string `json:"target"`
	Path   string `json:"path"`
}

type CardDetailsResponse struct {
	Brand        string `json:"brand"`
	Last4        string `json:"last4"`
	HolderName   string `json:"holder_name"`
	Installments int    `json:"installments"`
}

type PixDetailsResponse struct {
	QRCodePayload  string    `json:"qr_code_payload,omitempty"`
	QRCodeImage    string    `json:"qr_code_image,omitempty"`
	ExpirationDate time.Time `json:"expiration_date"`
	ManualPixPage  bool      `json:"manual_pix_page"`
}

type PaymentResponse struct {
	Success           bool                 `json:"success"`
	Method            string               `json:"method"`
	PaymentID         string               `json:"payment_id"`
	ProviderPaymentID string               `json:"provider_payment_id,omitempty"`
	Status            string               `json:"status,omitempty"`
	StatusSource      string               `json:"status_source,omitempty"`
	Timestamp         time.Time            `json:"timestamp"`
	Error             string               `json:"error,omitempty"`
	ErrorKind         string               `json:"error_kind,omitempty"`
	Card              *CardDetailsResponse `json:"card,omitempty"`
	Pix               *PixDetailsResponse  `json:"pix,omitempty"`
}

// CheckoutResponse is returned for settled, declined and duplicated attempts.
type CheckoutResponse struct {
	Duplicated bool             `json:"duplicated"`
	Redirect   RedirectResponse `json:"redirect"`
	Payment    PaymentResponse  `json:"payment"`
	Order      *OrderResponse   `json:"order,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{
		Duplicated: r.Duplicated,
		Payment:    FromPaymentResult(r.Payment),
	}
	if r.Redirect != "" {
		out.Redirect = RedirectResponse{Target: string(r.Redirect), Path: r.Redirect.Path()}
	}
	if r.Order != nil {
		o := FromOrder(*r.Order)
		out.Order = &o
	}
	return out
}

func FromPaymentResult(p entities.PaymentResult) PaymentResponse {
	out := PaymentResponse{
		Success:           p.Success,
		Method:            string(p.Method),
		PaymentID:         p.PaymentID,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		StatusSource:      string(p.StatusSource),
		Timestamp:         p.Timestamp,
		Error:             p.Error,
		ErrorKind:         string(p.ErrorKind),
	}
	if p.Card != nil {
		out.Card = &CardDetailsResponse{
			Brand:        string(p.Card.Brand),
			Last4:        p.Card.Last4,
			HolderName:   p.Card.HolderName,
			Installments: p.Card.Installments,
		}
	}
	if p.Pix != nil {
		out.Pix = &PixDetailsResponse{
			QRCodePayload:  p.Pix.QRCodePayload,
			QRCodeImage:    p.Pix.QRCodeImage,
			ExpirationDate: p.Pix.ExpirationDate,
			ManualPixPage:  p.Pix.ManualPixPage,
		}
	}
	return out
}
