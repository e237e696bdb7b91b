package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string
	Items       []OrderItem
	TotalAmount decimal.Decimal

	// Optional identity of the buyer on the external channel. Empty when the
	// order came in without one.
	TelegramUserID   string
	TelegramUserName string

	Status OrderStatus

	CreatedAt time.Time
}

// OrderItem is a copy of a cart item embedded into the order at placement time,
// not a reference.
type OrderItem struct {
	ID          string
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Quantity    int

	CreatedAt time.Time
}

// Total sums price×quantity across items.
func Total(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
