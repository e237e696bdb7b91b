package repository_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/goleak"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
	"github.com/nikolayk812/klimatshop/internal/repository"
)

type productRepositorySuite struct {
	suite.Suite

	client    *mongo.Client
	repo      port.ProductRepository
	container testcontainers.Container
}

func TestProductRepositorySuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startMongo(ctx)
	suite.NoError(err)

	var db *mongo.Database
	suite.client, db, err = connectMongo(ctx, connStr, "klimatshop_test")
	suite.NoError(err)

	suite.repo = repository.NewProduct(db)
}

func (suite *productRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.client != nil {
		suite.NoError(suite.client.Disconnect(ctx))
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *productRepositorySuite) TestInsertProduct() {
	t := suite.T()
	ctx := t.Context()

	product := fakeProduct()

	err := suite.repo.InsertProduct(ctx, product)
	require.NoError(t, err)

	actual, err := suite.repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	assertProduct(t, product, actual)
}

func (suite *productRepositorySuite) TestGetProduct_notFound() {
	t := suite.T()

	_, err := suite.repo.GetProduct(t.Context(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *productRepositorySuite) TestUpdateProductField() {
	t := suite.T()
	ctx := t.Context()

	product := fakeProduct()
	require.NoError(t, suite.repo.InsertProduct(ctx, product))

	newPrice := decimal.NewFromInt(54_990)

	tests := []struct {
		name      string
		productID string
		field     string
		value     any
		wantMatch bool
	}{
		{
			name:      "update name: ok",
			productID: product.ID,
			field:     "name",
			value:     "Кондиционер Mitsubishi MSZ-LN25",
			wantMatch: true,
		},
		{
			name:      "update price from decimal: ok",
			productID: product.ID,
			field:     "price",
			value:     newPrice,
			wantMatch: true,
		},
		{
			name:      "update specifications: ok",
			productID: product.ID,
			field:     "specifications",
			value:     map[string]string{"Мощность": "2.5 кВт"},
			wantMatch: true,
		},
		{
			name:      "update missing product: no match",
			productID: uuid.NewString(),
			field:     "name",
			value:     "anything",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			matched, err := suite.repo.UpdateProductField(ctx, tt.productID, tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, matched)
		})
	}

	actual, err := suite.repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Кондиционер Mitsubishi MSZ-LN25", actual.Name)
	assert.True(t, newPrice.Equal(actual.Price))
	assert.Equal(t, map[string]string{"Мощность": "2.5 кВт"}, actual.Specifications)
}

func (suite *productRepositorySuite) TestDeleteProduct() {
	t := suite.T()
	ctx := t.Context()

	product := fakeProduct()
	require.NoError(t, suite.repo.InsertProduct(ctx, product))

	deleted, err := suite.repo.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.repo.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.repo.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func fakeProduct() domain.Product {
	return domain.Product{
		ID:               uuid.NewString(),
		Name:             gofakeit.ProductName(),
		Description:      gofakeit.Sentence(10),
		ShortDescription: gofakeit.Sentence(4),
		Price:            decimal.NewFromFloat(gofakeit.Price(20_000, 150_000)),
		ImageURL:         gofakeit.URL(),
		Specifications: map[string]string{
			"Мощность охлаждения": "3.5 кВт",
			"Уровень шума":        "19 дБ",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func assertProduct(t *testing.T, expected domain.Product, actual domain.Product) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
	}

	assertNoDiff(t, expected, actual, opts)
}
