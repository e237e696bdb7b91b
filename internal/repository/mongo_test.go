package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoImage = "mongo:7"

func startMongo(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, "", fmt.Errorf("mongodb.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}

func connectMongo(ctx context.Context, connStr, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	return client, client.Database(dbName), nil
}

// Decimals survive storage as floats, so compare by value rather than exponent.
var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func assertNoDiff[T any](t *testing.T, expected, actual T, opts ...cmp.Option) {
	t.Helper()

	opts = append(opts, decimalComparer)
	diff := cmp.Diff(expected, actual, opts...)
	assert.Empty(t, diff)
}
