package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem holds the product name and price as they were at add-time, so later
// catalog edits or deletions never change what is already in a cart.
type CartItem struct {
	ID          string
	OwnerID     string
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Quantity    int

	CreatedAt time.Time
}
