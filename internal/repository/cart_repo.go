// internal/repository/cart_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// CartRepository defines the interface for cart and cart line operations.
// "Active" always means the buyer's cart with purchased = 'no'.
type CartRepository interface {
	GetActiveCartID(ctx context.Context, q DBExecutor, buyerID int64) (int64, error)
	// CreateActiveCart returns the buyer's active cart, creating it if none exists.
	CreateActiveCart(ctx context.Context, q DBExecutor, buyerID int64) (int64, error)
	// UpsertCartProduct inserts the line with quantity 1 or increments an existing one, atomically.
	UpsertCartProduct(ctx context.Context, q DBExecutor, cartID, productID int64) (*domain.CartLine, error)
	GetCartItemsCount(ctx context.Context, q DBExecutor, buyerID int64) (int64, error)
	GetCartItemsByBuyer(ctx context.Context, q DBExecutor, buyerID int64) ([]domain.CartItem, error)
	GetCartItemByProduct(ctx context.Context, q DBExecutor, buyerID, productID int64) (*domain.CartItem, error)
	// AdjustCartItemQuantity adds delta to a line of the buyer's active cart. The result is not floored.
	AdjustCartItemQuantity(ctx context.Context, q DBExecutor, cartProductID, buyerID, productID, delta int64) error
	// DeleteCartItem removes a line of the buyer's active cart.
	DeleteCartItem(ctx context.Context, q DBExecutor, cartProductID, buyerID int64) error
}
