package port

import (
	"context"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)

	InsertProduct(ctx context.Context, product domain.Product) error

	// UpdateProductField sets a single stored field by identity. Reports whether
	// a product matched.
	UpdateProductField(ctx context.Context, productID, field string, value any) (bool, error)

	// DeleteProduct reports whether a product was removed.
	DeleteProduct(ctx context.Context, productID string) (bool, error)
}
