package interfaces

import (
	"context"

	"checkout_service/internal/domain/entities"
)

// IOrderRepository abstracts persistence of settlement records.
//
// Lookups return a zero-value Order (empty ID) when nothing is found.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
