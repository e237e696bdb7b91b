package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type Orders struct {
	orders   port.OrderRepository
	carts    port.CartRepository
	notifier port.Notifier
	log      *zap.SugaredLogger
}

func NewOrders(orders port.OrderRepository, carts port.CartRepository, notifier port.Notifier, logger *zap.SugaredLogger) *Orders {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Orders{
		orders:   orders,
		carts:    carts,
		notifier: notifier,
		log:      logger,
	}
}

// PlaceOrder persists an order embedding a copy of the submitted items, so later
// catalog changes never alter it. The caller passes its own cart contents; the
// service does not re-fetch them. The owner is notified best-effort, and when a
// telegram user id is supplied that user's cart is cleared afterwards.
func (s *Orders) PlaceOrder(ctx context.Context, items []domain.OrderItem, tgUserID, tgUserName string) (domain.Order, error) {
	var zero domain.Order

	if len(items) == 0 {
		return zero, fmt.Errorf("order has no items: %w", domain.ErrValidation)
	}

	order := domain.Order{
		ID:               uuid.NewString(),
		Items:            items,
		TotalAmount:      domain.Total(items),
		TelegramUserID:   tgUserID,
		TelegramUserName: tgUserName,
		Status:           domain.OrderStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return zero, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	if err := s.notifier.Notify(ctx, formatOrderNotification(order)); err != nil {
		s.log.Warnw("order notification failed", "order_id", order.ID, "err", err)
	}

	// Without a user id there is no way to know which cart produced the order,
	// so it stays untouched.
	if tgUserID != "" {
		if _, err := s.carts.Clear(ctx, tgUserID); err != nil {
			s.log.Errorw("clearing cart after order failed", "order_id", order.ID, "user_id", tgUserID, "err", err)
		}
	}

	return order, nil
}

func (s *Orders) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return order, nil
}

func formatOrderNotification(order domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 <b>Новый заказ #%s</b>\n\n", order.ID[:8])
	b.WriteString("📦 <b>Товары:</b>\n")

	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(&b, "• %s - %d шт. × %s ₽ = %s ₽\n",
			item.ProductName, item.Quantity, item.Price.StringFixed(0), lineTotal.StringFixed(0))
	}

	fmt.Fprintf(&b, "\n💰 <b>Общая сумма:</b> %s ₽\n", order.TotalAmount.StringFixed(0))

	if order.TelegramUserName != "" {
		fmt.Fprintf(&b, "\n👤 <b>Покупатель:</b> %s\n", order.TelegramUserName)
	}

	fmt.Fprintf(&b, "\n🕐 <b>Время заказа:</b> %s", order.CreatedAt.Format("02.01.2006 15:04"))

	return b.String()
}
