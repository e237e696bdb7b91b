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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type cartRepository struct {
	col *mongo.Collection
}

func NewCart(db *mongo.Database) port.CartRepository {
	return &cartRepository{
		col: db.Collection(CollectionCartItems),
	}
}

type cartItemDoc struct {
	ID          string    `bson:"_id"`
	OwnerID     string    `bson:"user_id"`
	ProductID   string    `bson:"product_id"`
	ProductName string    `bson:"product_name"`
	Price       float64   `bson:"price"`
	Quantity    int       `bson:"quantity"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	var c domain.Cart

	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return c, fmt.Errorf("col.Find: %w", err)
	}

	var docs []cartItemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return c, fmt.Errorf("cursor.All: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   lo.Map(docs, func(doc cartItemDoc, _ int) domain.CartItem { return mapCartItemDocToDomain(doc) }),
	}, nil
}

func (r *cartRepository) IncrementItem(ctx context.Context, ownerID, productID string, quantity int) (domain.CartItem, bool, error) {
	filter := bson.M{"user_id": ownerID, "product_id": productID}
	update := bson.M{"$inc": bson.M{"quantity": quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc cartItemDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.CartItem{}, false, nil
		}
		return domain.CartItem{}, false, fmt.Errorf("col.FindOneAndUpdate: %w", err)
	}

	return mapCartItemDocToDomain(doc), true, nil
}

func (r *cartRepository) UpsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	// $inc plus $setOnInsert keeps merge-on-add atomic: a concurrent insert for
	// the same (user, product) pair turns this call into a quantity increment.
	filter := bson.M{"user_id": item.OwnerID, "product_id": item.ProductID}
	update := bson.M{
		"$inc": bson.M{"quantity": item.Quantity},
		"$setOnInsert": bson.M{
			"_id":          item.ID,
			"product_name": item.ProductName,
			"price":        item.Price.InexactFloat64(),
			"created_at":   item.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc cartItemDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return domain.CartItem{}, fmt.Errorf("col.FindOneAndUpdate: %w", err)
	}

	return mapCartItemDocToDomain(doc), nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error) {
	// The filter always includes the owner: items of other users must be
	// indistinguishable from missing ones.
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": itemID, "user_id": ownerID})
	if err != nil {
		return false, fmt.Errorf("col.DeleteOne: %w", err)
	}

	return result.DeletedCount > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID string) (int64, error) {
	result, err := r.col.DeleteMany(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("col.DeleteMany: %w", err)
	}

	return result.DeletedCount, nil
}

func mapCartItemDocToDomain(doc cartItemDoc) domain.CartItem {
	return domain.CartItem{
		ID:          doc.ID,
		OwnerID:     doc.OwnerID,
		ProductID:   doc.ProductID,
		ProductName: doc.ProductName,
		Price:       decimal.NewFromFloat(doc.Price),
		Quantity:    doc.Quantity,
		CreatedAt:   doc.CreatedAt,
	}
}
