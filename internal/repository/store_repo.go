// internal/repository/store_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// StoreRepository defines the interface for store data operations.
type StoreRepository interface {
	// CreateStore inserts a store and sets its ID.
	CreateStore(ctx context.Context, q DBExecutor, store *domain.StoreCredentials) error
	// GetStoreInfoByID retrieves a store with its categories and photos aggregated.
	GetStoreInfoByID(ctx context.Context, q DBExecutor, storeID int64) (*domain.StoreInfo, error)
	// GetStoreCredentialsByEmail retrieves the store row and password hash for a login email.
	GetStoreCredentialsByEmail(ctx context.Context, q DBExecutor, email string) (*domain.StoreCredentials, error)
	// UpdateStoreAddress sets the store address.
	UpdateStoreAddress(ctx context.Context, q DBExecutor, storeID int64, address string) error
	// UpdateStoreDelivery sets the delivery, pickup and radius options.
	UpdateStoreDelivery(ctx context.Context, q DBExecutor, storeID int64, delivery, pickup bool, radius int) error
	// AddStorePhoto attaches a photo path to a store.
	AddStorePhoto(ctx context.Context, q DBExecutor, storeID int64, photoPath string) error
	// GetStorePhotos lists the photo paths of a store.
	GetStorePhotos(ctx context.Context, q DBExecutor, storeID int64) ([]string, error)
	// AddStoreCategories links all categoryIDs to a store in one statement.
	AddStoreCategories(ctx context.Context, q DBExecutor, storeID int64, categoryIDs []int64) error
	// GetAllStores lists every store listing ordered by ID.
	GetAllStores(ctx context.Context, q DBExecutor) ([]domain.StoreListing, error)
	// GetRandomStores samples up to limit store listings.
	GetRandomStores(ctx context.Context, q DBExecutor, limit int) ([]domain.StoreListing, error)
}
