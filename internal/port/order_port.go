package port

import (
	"context"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)

	ListOrders(ctx context.Context) ([]domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) error
}
