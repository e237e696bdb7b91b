package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

// Cart owns the per-user cart operations. User-scoped filtering on every call
// is the sole isolation mechanism: there is no authorization layer above it.
type Cart struct {
	carts    port.CartRepository
	products port.ProductRepository
	log      *zap.SugaredLogger
}

func NewCart(carts port.CartRepository, products port.ProductRepository, logger *zap.SugaredLogger) *Cart {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Cart{
		carts:    carts,
		products: products,
		log:      logger,
	}
}

// AddItem merges on duplicate: a repeated add of the same product increments
// the existing item's quantity instead of creating a second row. A new item
// captures the product's current name and price.
func (s *Cart) AddItem(ctx context.Context, userID, productID string, quantity int) (domain.CartItem, error) {
	var zero domain.CartItem

	if userID == "" {
		return zero, fmt.Errorf("user_id is required: %w", domain.ErrValidation)
	}
	if productID == "" {
		return zero, fmt.Errorf("product_id is required: %w", domain.ErrValidation)
	}
	if quantity <= 0 {
		return zero, fmt.Errorf("quantity must be positive: %w", domain.ErrValidation)
	}

	// Try the increment first: an existing item does not need the product to
	// still resolve in the catalog.
	item, found, err := s.carts.IncrementItem(ctx, userID, productID, quantity)
	if err != nil {
		return zero, fmt.Errorf("carts.IncrementItem: %w", err)
	}
	if found {
		return item, nil
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return zero, fmt.Errorf("products.GetProduct: %w", err)
	}

	item, err = s.carts.UpsertItem(ctx, domain.CartItem{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		ProductID:   productID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return zero, fmt.Errorf("carts.UpsertItem: %w", err)
	}

	return item, nil
}

func (s *Cart) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	var zero domain.Cart

	if userID == "" {
		return zero, fmt.Errorf("user_id is required: %w", domain.ErrValidation)
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("carts.GetCart: %w", err)
	}

	return cart, nil
}

func (s *Cart) RemoveItem(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return fmt.Errorf("user_id is required: %w", domain.ErrValidation)
	}

	removed, err := s.carts.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("carts.DeleteItem: %w", err)
	}
	if !removed {
		// An item owned by someone else answers the same as a missing one.
		return fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ClearCart removes everything the user has and reports how many items went.
// Clearing an already empty cart succeeds with zero.
func (s *Cart) ClearCart(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("user_id is required: %w", domain.ErrValidation)
	}

	removed, err := s.carts.Clear(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("carts.Clear: %w", err)
	}

	return removed, nil
}
