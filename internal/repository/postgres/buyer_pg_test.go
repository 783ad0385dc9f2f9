// internal/repository/postgres/buyer_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localscoop/internal/domain"
	"localscoop/internal/util"
)

func TestBuyerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBuyerRepository()

	t.Run("ProjectionExcludesPassword", func(t *testing.T) {
		q := new(MockDBExecutor)
		q.On("SelectContext", ctx, mock.AnythingOfType("*[]domain.Buyer"),
			mock.MatchedBy(func(query string) bool { return !containsAny(query, "buyer_password") }), []interface{}(nil)).
			Return(nil).Once()

		buyers, err := repo.GetAllBuyers(ctx, q)

		require.NoError(t, err)
		assert.Empty(t, buyers)
		q.AssertExpectations(t)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		q := new(MockDBExecutor)
		q.On("GetContext", ctx, mock.AnythingOfType("*domain.Buyer"), mock.Anything, []interface{}{int64(12)}).Return(sql.ErrNoRows).Once()

		buyer, err := repo.GetBuyerByID(ctx, q, 12)

		assert.Nil(t, buyer)
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("CredentialsIncludePassword", func(t *testing.T) {
		q := new(MockDBExecutor)
		q.On("GetContext", ctx, mock.AnythingOfType("*domain.BuyerCredentials"), queryContaining("buyer_password", "WHERE lower(buyer_email) = lower($1)"), []interface{}{"ana@buyer.test"}).
			Run(func(args mock.Arguments) {
				creds := args.Get(1).(*domain.BuyerCredentials)
				creds.ID = 1
				creds.PasswordHash = "$2a$10$hash"
			}).
			Return(nil).Once()

		creds, err := repo.GetBuyerCredentialsByEmail(ctx, q, "ana@buyer.test")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", creds.PasswordHash)
	})
}
