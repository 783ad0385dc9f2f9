// internal/domain/cart.go
package domain

import (
	"github.com/shopspring/decimal"
)

// PurchasedFlag is the string enum stored in cart.purchased.
type PurchasedFlag string

const (
	PurchasedNo  PurchasedFlag = "no"  // Active cart
	PurchasedYes PurchasedFlag = "yes" // Checked out
)

// Cart is a buyer's cart. At most one cart per buyer is active (PurchasedNo).
type Cart struct {
	ID        int64         `db:"cart_id" json:"cart_id"`
	BuyerID   int64         `db:"buyer_id" json:"buyer_id"`
	Purchased PurchasedFlag `db:"purchased" json:"purchased"`
}

// CartLine is a raw cart_product row.
type CartLine struct {
	ID              int64 `db:"cart_product_id" json:"cart_product_id"`
	CartID          int64 `db:"cart_id" json:"cart_id"`
	ProductID       int64 `db:"product_id" json:"product_id"`
	ProductQuantity int64 `db:"product_quantity" json:"product_quantity"` // Not floored at zero
}

// CartItem is a cart line joined with its buyer, cart and product listing.
type CartItem struct {
	CartProductID   int64           `db:"cart_product_id" json:"cart_product_id"`
	BuyerID         int64           `db:"buyer_id" json:"buyer_id"`
	CartID          int64           `db:"cart_id" json:"cart_id"`
	ProductID       int64           `db:"product_id" json:"product_id"`
	ProductName     string          `db:"product_name" json:"product_name"`
	ProductPrice    decimal.Decimal `db:"product_price" json:"product_price"`
	ProductQuantity int64           `db:"product_quantity" json:"product_quantity"`
	Purchased       PurchasedFlag   `db:"purchased" json:"purchased"`
	ImageFilePaths  *string         `db:"image_file_paths" json:"image_file_paths"`
}

// TotalQuantity sums ProductQuantity over items.
func TotalQuantity(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.ProductQuantity
	}
	return total
}
