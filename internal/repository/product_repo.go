// internal/repository/product_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// ProductRepository defines the interface for product, product photo and search operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, q DBExecutor, product *domain.Product) error
	AddProductPhoto(ctx context.Context, q DBExecutor, productID int64, photoPath string) error
	// GetProductsByStoreID returns one row per product and photo; callers group photos themselves.
	GetProductsByStoreID(ctx context.Context, q DBExecutor, storeID int64) ([]domain.ProductPhotoRow, error)
	GetProductListing(ctx context.Context, q DBExecutor, productID int64) (*domain.ProductListing, error)
	GetProductListingsByStoreID(ctx context.Context, q DBExecutor, storeID int64) ([]domain.ProductListing, error)
	GetAllProducts(ctx context.Context, q DBExecutor) ([]domain.ProductListing, error)
	GetRandomProducts(ctx context.Context, q DBExecutor, limit int) ([]domain.ProductListing, error)
	// SearchProducts matches term case-insensitively against product name or category.
	SearchProducts(ctx context.Context, q DBExecutor, term string) ([]domain.ProductListing, error)
}
