package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type orderRepository struct {
	col *mongo.Collection
}

func NewOrder(db *mongo.Database) port.OrderRepository {
	return &orderRepository{
		col: db.Collection(CollectionOrders),
	}
}

type orderDoc struct {
	ID               string         `bson:"_id"`
	Items            []orderItemDoc `bson:"items"`
	TotalAmount      float64        `bson:"total_amount"`
	TelegramUserID   string         `bson:"telegram_user_id,omitempty"`
	TelegramUserName string         `bson:"telegram_user_name,omitempty"`
	Status           string         `bson:"status"`
	CreatedAt        time.Time      `bson:"created_at"`
}

type orderItemDoc struct {
	ID          string    `bson:"id"`
	ProductID   string    `bson:"product_id"`
	ProductName string    `bson:"product_name"`
	Price       float64   `bson:"price"`
	Quantity    int       `bson:"quantity"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	var o domain.Order

	var doc orderDoc
	err := r.col.FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return o, fmt.Errorf("col.FindOne: %w", domain.ErrNotFound)
		}
		return o, fmt.Errorf("col.FindOne: %w", err)
	}

	order, err := mapOrderDocToDomain(doc)
	if err != nil {
		return o, fmt.Errorf("mapOrderDocToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("col.Find: %w", err)
	}

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	var orders []domain.Order
	for _, doc := range docs {
		order, err := mapOrderDocToDomain(doc)
		if err != nil {
			return nil, fmt.Errorf("mapOrderDocToDomain: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) error {
	if len(order.Items) == 0 {
		return errors.New("no items in order")
	}

	if _, err := r.col.InsertOne(ctx, mapDomainOrderToDoc(order)); err != nil {
		return fmt.Errorf("col.InsertOne: %w", err)
	}

	return nil
}

func mapOrderDocToDomain(doc orderDoc) (domain.Order, error) {
	status, err := domain.ToOrderStatus(doc.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("status[%s] is not valid: %w", doc.Status, err)
	}

	items := lo.Map(doc.Items, func(item orderItemDoc, _ int) domain.OrderItem {
		return domain.OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       decimal.NewFromFloat(item.Price),
			Quantity:    item.Quantity,
			CreatedAt:   item.CreatedAt,
		}
	})

	return domain.Order{
		ID:               doc.ID,
		Items:            items,
		TotalAmount:      decimal.NewFromFloat(doc.TotalAmount),
		TelegramUserID:   doc.TelegramUserID,
		TelegramUserName: doc.TelegramUserName,
		Status:           status,
		CreatedAt:        doc.CreatedAt,
	}, nil
}

func mapDomainOrderToDoc(order domain.Order) orderDoc {
	items := lo.Map(order.Items, func(item domain.OrderItem, _ int) orderItemDoc {
		return orderItemDoc{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price.InexactFloat64(),
			Quantity:    item.Quantity,
			CreatedAt:   item.CreatedAt,
		}
	})

	return orderDoc{
		ID:               order.ID,
		Items:            items,
		TotalAmount:      order.TotalAmount.InexactFloat64(),
		TelegramUserID:   order.TelegramUserID,
		TelegramUserName: order.TelegramUserName,
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
	}
}
