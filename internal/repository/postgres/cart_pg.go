// internal/repository/postgres/cart_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

// cartItemQuery selects the active cart's lines joined with buyer and product listing.
const cartItemQuery = `
	SELECT cp.cart_product_id, b.buyer_id, c.cart_id, p.product_id, p.product_name,
	       p.product_price, cp.product_quantity, c.purchased, p.image_file_paths
	FROM buyer AS b
	JOIN cart AS c ON b.buyer_id = c.buyer_id
	JOIN cart_product AS cp ON c.cart_id = cp.cart_id
	JOIN productsandimages AS p ON cp.product_id = p.product_id
	WHERE b.buyer_id = $1 AND c.purchased = 'no'`

// CartRepository implements repository.CartRepository for PostgreSQL.
type CartRepository struct{}

// NewCartRepository creates a new CartRepository.
func NewCartRepository() repository.CartRepository {
	return &CartRepository{}
}

// GetActiveCartID retrieves the ID of the buyer's unpurchased cart.
func (r *CartRepository) GetActiveCartID(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	var cartID int64
	query := `SELECT cart_id FROM cart WHERE buyer_id = $1 AND purchased = 'no'`
	err := q.GetContext(ctx, &cartID, query, buyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, util.ErrNotFound
		}
		return 0, dbError(err, "failed to get active cart for buyer %d", buyerID)
	}
	return cartID, nil
}

// CreateActiveCart opens an active cart for the buyer. When one already exists
// (the partial unique index cart_one_active_per_buyer fires) that cart is returned.
func (r *CartRepository) CreateActiveCart(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	var cartID int64
	query := `INSERT INTO cart (buyer_id, purchased) VALUES ($1, 'no')
              ON CONFLICT (buyer_id) WHERE purchased = 'no' DO NOTHING
              RETURNING cart_id`
	err := q.GetContext(ctx, &cartID, query, buyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.GetActiveCartID(ctx, q, buyerID)
		}
		return 0, dbError(err, "failed to create cart for buyer %d", buyerID)
	}
	return cartID, nil
}

// UpsertCartProduct adds one unit of a product to a cart in a single statement.
func (r *CartRepository) UpsertCartProduct(ctx context.Context, q repository.DBExecutor, cartID, productID int64) (*domain.CartLine, error) {
	var line domain.CartLine
	query := `INSERT INTO cart_product (cart_id, product_id, product_quantity) VALUES ($1, $2, 1)
              ON CONFLICT (cart_id, product_id)
              DO UPDATE SET product_quantity = cart_product.product_quantity + 1
              RETURNING cart_product_id, cart_id, product_id, product_quantity`
	if err := q.GetContext(ctx, &line, query, cartID, productID); err != nil {
		return nil, dbError(err, "failed to add product %d to cart %d", productID, cartID)
	}
	return &line, nil
}

// GetCartItemsCount sums quantities over the buyer's active cart. No cart counts as zero.
func (r *CartRepository) GetCartItemsCount(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	var count int64
	query := `
		SELECT COALESCE(SUM(cp.product_quantity), 0)
		FROM cart AS c
		JOIN cart_product AS cp ON cp.cart_id = c.cart_id
		WHERE c.buyer_id = $1 AND c.purchased = 'no'`
	if err := q.GetContext(ctx, &count, query, buyerID); err != nil {
		return 0, dbError(err, "failed to count cart items for buyer %d", buyerID)
	}
	return count, nil
}

// GetCartItemsByBuyer lists the lines of the buyer's active cart.
func (r *CartRepository) GetCartItemsByBuyer(ctx context.Context, q repository.DBExecutor, buyerID int64) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	query := cartItemQuery + ` ORDER BY cp.cart_product_id`
	if err := q.SelectContext(ctx, &items, query, buyerID); err != nil {
		return nil, dbError(err, "failed to fetch cart items for buyer %d", buyerID)
	}
	return items, nil
}

// GetCartItemByProduct retrieves the active cart line for one product.
func (r *CartRepository) GetCartItemByProduct(ctx context.Context, q repository.DBExecutor, buyerID, productID int64) (*domain.CartItem, error) {
	var item domain.CartItem
	query := cartItemQuery + ` AND p.product_id = $2`
	err := q.GetContext(ctx, &item, query, buyerID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get cart item for buyer %d and product %d", buyerID, productID)
	}
	return &item, nil
}

// activeLineOfBuyer restricts a cart_product statement to lines of the buyer's
// active cart. $1 is the line id and $2 the buyer id.
const activeLineOfBuyer = `cart_product_id = $1
                AND cart_id IN (SELECT cart_id FROM cart WHERE buyer_id = $2 AND purchased = 'no')`

// AdjustCartItemQuantity adds delta to a line of the buyer's active cart.
// Quantities may reach zero or below; removing a line is DeleteCartItem's job.
// A line that belongs to another buyer, a purchased cart or another product
// is reported as not found.
func (r *CartRepository) AdjustCartItemQuantity(ctx context.Context, q repository.DBExecutor, cartProductID, buyerID, productID, delta int64) error {
	query := `UPDATE cart_product SET product_quantity = product_quantity + $4
              WHERE ` + activeLineOfBuyer + `
                AND product_id = $3`
	result, err := q.ExecContext(ctx, query, cartProductID, buyerID, productID, delta)
	if err != nil {
		return dbError(err, "failed to adjust quantity of cart item %d", cartProductID)
	}
	return requireAffected(result, "cart item", cartProductID)
}

// DeleteCartItem removes a line of the buyer's active cart. Lines of purchased
// carts are kept. Deleting a line that does not exist is not an error.
func (r *CartRepository) DeleteCartItem(ctx context.Context, q repository.DBExecutor, cartProductID, buyerID int64) error {
	query := `DELETE FROM cart_product WHERE ` + activeLineOfBuyer
	if _, err := q.ExecContext(ctx, query, cartProductID, buyerID); err != nil {
		return dbError(err, "failed to delete cart item %d", cartProductID)
	}
	return nil
}
