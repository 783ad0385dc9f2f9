// internal/domain/chat.go
package domain

import "time"

// Chat is a conversation between one buyer and one store.
type Chat struct {
	ID        int64     `db:"chat_id" json:"chat_id"`
	BuyerID   int64     `db:"buyer_id" json:"buyer_id"`
	StoreID   int64     `db:"store_id" json:"store_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
