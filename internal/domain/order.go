// internal/domain/order.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single-product order placed with a store.
type Order struct {
	ID              int64     `db:"order_id" json:"order_id"`
	StoreID         int64     `db:"store_id" json:"store_id"`
	BuyerID         int64     `db:"buyer_id" json:"buyer_id"`
	ProductID       int64     `db:"product_id" json:"product_id"`
	ProductQuantity int64     `db:"product_quantity" json:"product_quantity"`
	OrderStatusID   int64     `db:"order_status_id" json:"order_status_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// OrderDetail is an order joined with its product, one product photo per row, and its status name.
type OrderDetail struct {
	Order
	ProductName     string          `db:"product_name" json:"product_name"`
	ProductPrice    decimal.Decimal `db:"product_price" json:"product_price"`
	PhotoFilePath   *string         `db:"photo_file_path" json:"photo_file_path"`
	OrderStatusName string          `db:"order_status_name" json:"order_status_name"`
}
