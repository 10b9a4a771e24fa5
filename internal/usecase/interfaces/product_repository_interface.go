package interfaces

import (
	"context"

	"checkout_service/internal/domain/entities"
)

// IProductRepository abstracts persistence of storefront products.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
