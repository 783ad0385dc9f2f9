// internal/repository/order_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// OrderRepository defines the interface for reading a store's orders.
type OrderRepository interface {
	GetOrdersByStoreID(ctx context.Context, q DBExecutor, storeID int64) ([]domain.Order, error)
	// GetOrderDetailsByStoreID returns one row per order and product photo.
	GetOrderDetailsByStoreID(ctx context.Context, q DBExecutor, storeID int64) ([]domain.OrderDetail, error)
}
