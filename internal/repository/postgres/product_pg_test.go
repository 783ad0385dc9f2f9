// internal/repository/postgres/product_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localscoop/internal/domain"
	"localscoop/internal/util"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "abc", want: "%abc%"},
		{term: "50%", want: `%50\%%`},
		{term: "a_b", want: `%a\_b%`},
		{term: `c:\tmp`, want: `%c:\\tmp%`},
		{term: "", want: "%%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.term), "term %q", tt.term)
	}
}

func TestProductRepository_SearchProducts(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	q := new(MockDBExecutor)

	q.On("SelectContext", ctx, mock.AnythingOfType("*[]domain.ProductListing"),
		queryContaining("FROM productsandimages", "product_name ILIKE $1 OR product_category ILIKE $1"),
		[]interface{}{"%abc%"}).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*[]domain.ProductListing) = []domain.ProductListing{
				{Product: domain.Product{ID: 1, Name: "ABC blocks"}},
				{Product: domain.Product{ID: 2, Name: "Crayons", Category: "abc-toys"}},
			}
		}).
		Return(nil).Once()

	listings, err := repo.SearchProducts(ctx, q, "abc")

	require.NoError(t, err)
	assert.Len(t, listings, 2)
	q.AssertExpectations(t)
}

func TestProductRepository_CreateProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	q := new(MockDBExecutor)
	price := decimal.RequireFromString("20.00")
	fee := decimal.RequireFromString("4.50")
	product := domain.NewProduct(2, "Olive oil", "food", "Cold pressed", price, fee)

	q.On("GetContext", ctx, &product.ID, queryContaining("INSERT INTO product", "RETURNING product_id"),
		[]interface{}{int64(2), "Olive oil", "food", "Cold pressed", price, fee}).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*int64) = 76
		}).
		Return(nil).Once()

	require.NoError(t, repo.CreateProduct(ctx, q, product))
	assert.Equal(t, int64(76), product.ID)
	q.AssertExpectations(t)
}

func TestProductRepository_GetProductsByStoreID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	q := new(MockDBExecutor)
	front, back := "front.jpg", "back.jpg"

	q.On("SelectContext", ctx, mock.AnythingOfType("*[]domain.ProductPhotoRow"),
		queryContaining("LEFT JOIN store", "LEFT JOIN product_photo", "WHERE store.store_id = $1"),
		[]interface{}{int64(5)}).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*[]domain.ProductPhotoRow) = []domain.ProductPhotoRow{
				{Product: domain.Product{ID: 1, StoreID: 5}, StoreName: "Scoop", PhotoFilePath: &front},
				{Product: domain.Product{ID: 1, StoreID: 5}, StoreName: "Scoop", PhotoFilePath: &back},
			}
		}).
		Return(nil).Once()

	rows, err := repo.GetProductsByStoreID(ctx, q, 5)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Scoop", row.StoreName)
	}
}

func TestProductRepository_GetProductListing(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	t.Run("NotFound", func(t *testing.T) {
		q := new(MockDBExecutor)
		q.On("GetContext", ctx, mock.Anything, mock.Anything, []interface{}{int64(9)}).Return(sql.ErrNoRows).Once()

		listing, err := repo.GetProductListing(ctx, q, 9)

		assert.Nil(t, listing)
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("ForeignKeyViolationOnPhoto", func(t *testing.T) {
		q := new(MockDBExecutor)
		q.On("ExecContext", ctx, mock.Anything, mock.Anything).Return(nil, pqForeignKeyError()).Once()

		err := repo.AddProductPhoto(ctx, q, 404, "x.jpg")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}
