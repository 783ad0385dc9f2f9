// internal/repository/postgres/order_pg.go
package postgres

import (
	"context"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
)

// OrderRepository implements repository.OrderRepository for PostgreSQL.
// "order" is a reserved word and must stay quoted.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository() repository.OrderRepository {
	return &OrderRepository{}
}

// GetOrdersByStoreID lists a store's orders, newest first.
func (r *OrderRepository) GetOrdersByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.Order, error) {
	orders := []domain.Order{}
	query := `
		SELECT order_id, store_id, buyer_id, product_id, product_quantity, order_status_id, created_at
		FROM "order"
		WHERE store_id = $1
		ORDER BY created_at DESC, order_id DESC`
	if err := q.SelectContext(ctx, &orders, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch orders for store %d", storeID)
	}
	return orders, nil
}

// GetOrderDetailsByStoreID lists a store's orders with product, photo and status.
func (r *OrderRepository) GetOrderDetailsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.OrderDetail, error) {
	details := []domain.OrderDetail{}
	query := `
		SELECT o.order_id, o.store_id, o.buyer_id, o.product_id, o.product_quantity, o.order_status_id, o.created_at,
		       p.product_name, p.product_price, pp.photo_file_path, os.order_status_name
		FROM "order" AS o
		JOIN product AS p ON o.product_id = p.product_id
		LEFT JOIN product_photo AS pp ON pp.product_id = o.product_id
		JOIN order_status AS os ON os.order_status_id = o.order_status_id
		WHERE o.store_id = $1
		ORDER BY o.order_id, pp.product_photo_id`
	if err := q.SelectContext(ctx, &details, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch order details for store %d", storeID)
	}
	return details, nil
}
