package port

import (
	"context"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// IncrementItem atomically adds quantity to the existing (ownerID, productID)
	// item. Returns the updated item and false when no such item exists.
	IncrementItem(ctx context.Context, ownerID, productID string, quantity int) (domain.CartItem, bool, error)

	// UpsertItem inserts the item, or increments the quantity of a concurrently
	// inserted one, in a single atomic operation. Returns the resulting item.
	UpsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error)

	// DeleteItem removes the item only when it belongs to ownerID. Reports
	// whether anything was removed.
	DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error)

	// Clear removes all items of ownerID and reports how many were removed.
	Clear(ctx context.Context, ownerID string) (int64, error)
}
