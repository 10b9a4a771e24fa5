package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound            = errors.New("product not found")
	ErrInvalidProductID           = errors.New("invalid product id")
	ErrInvalidProductName         = errors.New("invalid product name")
	ErrInvalidProductPrice        = errors.New("invalid product price")
	ErrInvalidProductManualStatus = errors.New("invalid product manual status")
)

type IProductUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.CustomManualStatus = strings.TrimSpace(p.CustomManualStatus)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if !p.Price.IsPositive() {
		return entities.Product{}, ErrInvalidProductPrice
	}
	if p.CustomManualStatus != "" {
		if _, known := entities.NormalizeStatus(p.CustomManualStatus); !known {
			return entities.Product{}, ErrInvalidProductManualStatus
		}
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}
