// internal/repository/chat_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// ChatRepository defines the interface for buyer/store conversations.
type ChatRepository interface {
	// CreateChat opens the conversation for a buyer and store, or returns the existing one.
	CreateChat(ctx context.Context, q DBExecutor, buyerID, storeID int64) (*domain.Chat, error)
	GetBuyerChats(ctx context.Context, q DBExecutor, buyerID int64) ([]domain.Chat, error)
	GetSellerChats(ctx context.Context, q DBExecutor, storeID int64) ([]domain.Chat, error)
}
