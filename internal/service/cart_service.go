// internal/service/cart_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

// CartService defines the interface for a buyer's active cart.
type CartService interface {
	GetActiveCartID(ctx context.Context, buyerID int64) (int64, error)
	AddToCart(ctx context.Context, buyerID, productID int64) (int64, error)
	GetCartItemsCount(ctx context.Context, buyerID int64) (int64, error)
	GetCartItemsByBuyer(ctx context.Context, buyerID int64) ([]domain.CartItem, error)
	GetCartItemByProduct(ctx context.Context, buyerID, productID int64) (*domain.CartItem, error)
	GetCartItemsLength(ctx context.Context, buyerID int64) (int64, error)
	IncrementCartItem(ctx context.Context, cartProductID, buyerID, productID int64) (*domain.CartItem, error)
	DecrementCartItem(ctx context.Context, cartProductID, buyerID, productID int64) (*domain.CartItem, error)
	DeleteCartItem(ctx context.Context, cartProductID, buyerID int64) error
}

// cartService implements the CartService interface.
type cartService struct {
	tx         Transactor
	dbExecutor repository.DBExecutor
	cartRepo   repository.CartRepository
	logger     *slog.Logger
}

// NewCartService creates a new instance of CartService.
func NewCartService(
	tx Transactor,
	dbExecutor repository.DBExecutor,
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) CartService {
	return &cartService{
		tx:         tx,
		dbExecutor: dbExecutor,
		cartRepo:   cartRepo,
		logger:     logger,
	}
}

func (s *cartService) GetActiveCartID(ctx context.Context, buyerID int64) (int64, error) {
	cartID, err := s.cartRepo.GetActiveCartID(ctx, s.dbExecutor, buyerID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return 0, util.ErrCartNotFound
		}
		return 0, fmt.Errorf("get active cart: %w", err)
	}
	return cartID, nil
}

// AddToCart puts one unit of the product into the buyer's active cart,
// opening the cart when the buyer has none. It returns the cart's new item
// count. Concurrent adds of the same product never produce a second line.
func (s *cartService) AddToCart(ctx context.Context, buyerID, productID int64) (int64, error) {
	var count int64
	err := s.tx.withTx(ctx, "add to cart", func(q repository.DBExecutor) error {
		cartID, err := s.cartRepo.GetActiveCartID(ctx, q, buyerID)
		if util.IsError(err, util.ErrNotFound) {
			cartID, err = s.cartRepo.CreateActiveCart(ctx, q, buyerID)
			if util.IsError(err, util.ErrInvalidInput) {
				return fmt.Errorf("add to cart: %w", util.ErrBuyerNotFound)
			}
			if err == nil {
				s.logger.Debug("Opened cart", "buyer_id", buyerID, "cart_id", cartID)
			}
		}
		if err != nil {
			return fmt.Errorf("add to cart: failed to resolve active cart: %w", err)
		}

		line, err := s.cartRepo.UpsertCartProduct(ctx, q, cartID, productID)
		if err != nil {
			if util.IsError(err, util.ErrInvalidInput) {
				return fmt.Errorf("add to cart: %w", util.ErrProductNotFound)
			}
			return fmt.Errorf("add to cart: failed to upsert cart item: %w", err)
		}

		count, err = s.cartRepo.GetCartItemsCount(ctx, q, buyerID)
		if err != nil {
			return fmt.Errorf("add to cart: failed to count cart items: %w", err)
		}

		s.logger.Debug("Cart item added", "buyer_id", buyerID, "cart_product_id", line.ID, "quantity", line.ProductQuantity)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetCartItemsCount sums the quantities in the active cart. A buyer with no
// active cart has a count of zero.
func (s *cartService) GetCartItemsCount(ctx context.Context, buyerID int64) (int64, error) {
	count, err := s.cartRepo.GetCartItemsCount(ctx, s.dbExecutor, buyerID)
	if err != nil {
		return 0, fmt.Errorf("get cart items count: %w", err)
	}
	return count, nil
}

func (s *cartService) GetCartItemsByBuyer(ctx context.Context, buyerID int64) ([]domain.CartItem, error) {
	items, err := s.cartRepo.GetCartItemsByBuyer(ctx, s.dbExecutor, buyerID)
	if err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}
	return items, nil
}

func (s *cartService) GetCartItemByProduct(ctx context.Context, buyerID, productID int64) (*domain.CartItem, error) {
	item, err := s.cartRepo.GetCartItemByProduct(ctx, s.dbExecutor, buyerID, productID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("get cart item for product %d: %w", productID, err)
	}
	return item, nil
}

// GetCartItemsLength is the client-side sum of item quantities. It agrees
// with GetCartItemsCount.
func (s *cartService) GetCartItemsLength(ctx context.Context, buyerID int64) (int64, error) {
	items, err := s.GetCartItemsByBuyer(ctx, buyerID)
	if err != nil {
		return 0, err
	}
	return domain.TotalQuantity(items), nil
}

func (s *cartService) IncrementCartItem(ctx context.Context, cartProductID, buyerID, productID int64) (*domain.CartItem, error) {
	return s.adjust(ctx, "increment cart item", cartProductID, buyerID, productID, 1)
}

// DecrementCartItem removes one unit. A line at quantity 1 drops to 0 and
// stays in the cart until DeleteCartItem is called.
func (s *cartService) DecrementCartItem(ctx context.Context, cartProductID, buyerID, productID int64) (*domain.CartItem, error) {
	return s.adjust(ctx, "decrement cart item", cartProductID, buyerID, productID, -1)
}

// adjust changes the quantity of a line in the buyer's active cart and
// rereads it in the same transaction, so a failed reread leaves the line as it was.
func (s *cartService) adjust(ctx context.Context, op string, cartProductID, buyerID, productID, delta int64) (*domain.CartItem, error) {
	var item *domain.CartItem
	err := s.tx.withTx(ctx, op, func(q repository.DBExecutor) error {
		if err := s.cartRepo.AdjustCartItemQuantity(ctx, q, cartProductID, buyerID, productID, delta); err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return fmt.Errorf("%s %d: %w", op, cartProductID, util.ErrCartItemNotFound)
			}
			return fmt.Errorf("%s %d: %w", op, cartProductID, err)
		}

		var err error
		item, err = s.cartRepo.GetCartItemByProduct(ctx, q, buyerID, productID)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				err = util.ErrCartItemNotFound
			}
			return fmt.Errorf("%s: failed to re-fetch item: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteCartItem removes a line from the buyer's active cart. Removing a line
// that is already gone succeeds.
func (s *cartService) DeleteCartItem(ctx context.Context, cartProductID, buyerID int64) error {
	if err := s.cartRepo.DeleteCartItem(ctx, s.dbExecutor, cartProductID, buyerID); err != nil {
		return fmt.Errorf("delete cart item %d: %w", cartProductID, err)
	}
	return nil
}
