package entities

import "time"

// FailureKind classifies a failed settlement attempt.
type FailureKind string

const (
	FailureKindConfiguration FailureKind = "configuration"
	FailureKindValidation    FailureKind = "validation"
	FailureKindProvider      FailureKind = "provider"
	FailureKindDeclined      FailureKind = "declined"
)

// StatusSource records which rule decided the status of a card payment.
type StatusSource string

const (
	StatusSourceProduct   StatusSource = "product"
	StatusSourceGlobal    StatusSource = "global"
	StatusSourceAutomatic StatusSource = "automatic"
	StatusSourceProvider  StatusSource = "provider"
)

// PaymentResult is the outcome of a single settlement attempt. It is built once
// and never mutated.
//
// Status is empty when the attempt failed before a status could be settled
// (configuration, validation or provider failures). A declined payment is a
// settled attempt: Success is false and Status is REJECTED.
type PaymentResult struct {
	Success           bool          `json:"success"`
	Method            PaymentMethod `json:"method"`
	PaymentID         string        `json:"payment_id"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	Status            PaymentStatus `json:"status,omitempty"`
	StatusSource      StatusSource  `json:"status_source,omitempty"`
	Timestamp         time.Time     `json:"timestamp"`
	Error             string        `json:"error,omitempty"`
	ErrorKind         FailureKind   `json:"error_kind,omitempty"`

	Card *CardPaymentDetails `json:"card,omitempty"`
	Pix  *PixPaymentDetails  `json:"pix,omitempty"`
}

func (r PaymentResult) Settled() bool {
	return r.Status.IsValid()
}

type CardPaymentDetails struct {
	Brand        CardBrand `json:"brand"`
	Last4        string    `json:"last4"`
	HolderName   string    `json:"holder_name"`
	Installments int       `json:"installments"`
}

// PixPaymentDetails carries the QR artifact. When ManualPixPage is set there is
// no QR: the customer pays out of band and confirms on the manual page.
type PixPaymentDetails struct {
	QRCodePayload  string    `json:"qr_code_payload,omitempty"`
	QRCodeImage    string    `json:"qr_code_image,omitempty"`
	ExpirationDate time.Time `json:"expiration_date"`
	ManualPixPage  bool      `json:"manual_pix_page"`
}
