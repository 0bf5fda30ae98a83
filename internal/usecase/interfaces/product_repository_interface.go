package interfaces

import (
	"context"
	"quoteportal/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for catalog products.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
