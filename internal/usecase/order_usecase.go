package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidPaymentID   = errors.New("invalid payment id")
)

// IOrderUseCase exposes the order store operations.
//
// Settlement only ever calls CreateOrder; status updates and deletes are admin
// actions.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if strings.TrimSpace(o.PaymentID) == "" {
		return entities.Order{}, ErrInvalidPaymentID
	}
	if !o.PaymentStatus.IsValid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = o.CreatedAt
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns every order, newest first.
func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (u *OrderUseCase) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	orders, err := u.repo.ListByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// UpdateOrderStatus only accepts the canonical vocabulary. Legacy or provider
// spellings are rejected instead of being normalized: an admin typo must not
// turn into a silent PENDING.
func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, id string, status string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	s, ok := entities.ParsePaymentStatus(status)
	if !ok {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, s)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	return nil
}

func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
