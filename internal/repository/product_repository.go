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

type productRepository struct {
	col *mongo.Collection
}

func NewProduct(db *mongo.Database) port.ProductRepository {
	return &productRepository{
		col: db.Collection(CollectionProducts),
	}
}

type productDoc struct {
	ID               string            `bson:"_id"`
	Name             string            `bson:"name"`
	Description      string            `bson:"description"`
	ShortDescription string            `bson:"short_description"`
	Price            float64           `bson:"price"`
	ImageURL         string            `bson:"image_url"`
	Specifications   map[string]string `bson:"specifications"`
	CreatedAt        time.Time         `bson:"created_at"`
}

func (r *productRepository) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	var doc productDoc
	err := r.col.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, fmt.Errorf("col.FindOne: %w", domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("col.FindOne: %w", err)
	}

	return mapProductDocToDomain(doc), nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("col.Find: %w", err)
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return lo.Map(docs, func(doc productDoc, _ int) domain.Product { return mapProductDocToDomain(doc) }), nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) error {
	if _, err := r.col.InsertOne(ctx, mapDomainProductToDoc(product)); err != nil {
		return fmt.Errorf("col.InsertOne: %w", err)
	}

	return nil
}

func (r *productRepository) UpdateProductField(ctx context.Context, productID, field string, value any) (bool, error) {
	if d, ok := value.(decimal.Decimal); ok {
		value = d.InexactFloat64()
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return false, fmt.Errorf("col.UpdateOne: %w", err)
	}

	return result.MatchedCount > 0, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID string) (bool, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return false, fmt.Errorf("col.DeleteOne: %w", err)
	}

	return result.DeletedCount > 0, nil
}

func mapProductDocToDomain(doc productDoc) domain.Product {
	return domain.Product{
		ID:               doc.ID,
		Name:             doc.Name,
		Description:      doc.Description,
		ShortDescription: doc.ShortDescription,
		Price:            decimal.NewFromFloat(doc.Price),
		ImageURL:         doc.ImageURL,
		Specifications:   doc.Specifications,
		CreatedAt:        doc.CreatedAt,
	}
}

func mapDomainProductToDoc(product domain.Product) productDoc {
	return productDoc{
		ID:               product.ID,
		Name:             product.Name,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		Price:            product.Price.InexactFloat64(),
		ImageURL:         product.ImageURL,
		Specifications:   product.Specifications,
		CreatedAt:        product.CreatedAt,
	}
}
