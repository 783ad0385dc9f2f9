// internal/repository/buyer_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// BuyerRepository defines the interface for buyer data operations.
type BuyerRepository interface {
	// CreateBuyer inserts a buyer and sets its ID.
	CreateBuyer(ctx context.Context, q DBExecutor, buyer *domain.BuyerCredentials) error
	// GetBuyerCredentialsByEmail retrieves the buyer row and password hash for a login email.
	GetBuyerCredentialsByEmail(ctx context.Context, q DBExecutor, email string) (*domain.BuyerCredentials, error)
	GetAllBuyers(ctx context.Context, q DBExecutor) ([]domain.Buyer, error)
	GetBuyerByID(ctx context.Context, q DBExecutor, buyerID int64) (*domain.Buyer, error)
}
