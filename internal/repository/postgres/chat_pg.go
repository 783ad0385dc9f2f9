// internal/repository/postgres/chat_pg.go
package postgres

import (
	"context"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
)

const chatColumns = `chat_id, buyer_id, store_id, created_at`

// ChatRepository implements repository.ChatRepository for PostgreSQL.
type ChatRepository struct{}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository() repository.ChatRepository {
	return &ChatRepository{}
}

// CreateChat opens a chat for the pair or returns the existing one.
// The no-op update makes RETURNING yield the row on conflict too.
func (r *ChatRepository) CreateChat(ctx context.Context, q repository.DBExecutor, buyerID, storeID int64) (*domain.Chat, error) {
	var chat domain.Chat
	query := `INSERT INTO chat (buyer_id, store_id) VALUES ($1, $2)
              ON CONFLICT (buyer_id, store_id) DO UPDATE SET buyer_id = EXCLUDED.buyer_id
              RETURNING ` + chatColumns
	if err := q.GetContext(ctx, &chat, query, buyerID, storeID); err != nil {
		return nil, dbError(err, "failed to create chat between buyer %d and store %d", buyerID, storeID)
	}
	return &chat, nil
}

// GetBuyerChats lists the chats of a buyer.
func (r *ChatRepository) GetBuyerChats(ctx context.Context, q repository.DBExecutor, buyerID int64) ([]domain.Chat, error) {
	chats := []domain.Chat{}
	query := `SELECT ` + chatColumns + ` FROM chat WHERE buyer_id = $1 ORDER BY chat_id`
	if err := q.SelectContext(ctx, &chats, query, buyerID); err != nil {
		return nil, dbError(err, "failed to fetch chats for buyer %d", buyerID)
	}
	return chats, nil
}

// GetSellerChats lists the chats of a store.
func (r *ChatRepository) GetSellerChats(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.Chat, error) {
	chats := []domain.Chat{}
	query := `SELECT ` + chatColumns + ` FROM chat WHERE store_id = $1 ORDER BY chat_id`
	if err := q.SelectContext(ctx, &chats, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch chats for store %d", storeID)
	}
	return chats, nil
}
