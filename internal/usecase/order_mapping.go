package usecase

import (
	"time"

	"checkout_service/internal/domain/entities"
)

// newOrderFromPayment maps a settled attempt to the order record. The product
// is copied as a snapshot so later product edits never reach this order.
func newOrderFromPayment(result entities.PaymentResult, product entities.Product, customer entities.CustomerSnapshot, device entities.DeviceType) entities.Order {
	o := entities.Order{
		Customer:          customer,
		Product:           product.Snapshot(),
		PaymentMethod:     result.Method,
		PaymentStatus:     result.Status,
		PaymentID:         result.PaymentID,
		ProviderPaymentID: result.ProviderPaymentID,
		DeviceType:        device,
		CreatedAt:         result.Timestamp,
	}
	if o.DeviceType == "" {
		o.DeviceType = entities.DeviceTypeDesktop
	}

	if c := result.Card; c != nil {
		o.CardBrand = c.Brand
		o.CardLast4 = c.Last4
		o.Installments = c.Installments
	}
	if p := result.Pix; p != nil {
		exp := p.ExpirationDate.UTC().Truncate(time.Millisecond)
		o.PixExpirationDate = &exp
	}
	return o
}
