// internal/repository/postgres/store_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

const storeColumns = `store.store_id, store.store_name, store.store_phone_number, store.store_email,
	store.store_address, store.delivery, store.pickup, store.radius`

const storeListingColumns = `store_id, store_name, store_phone_number, store_email,
	store_address, delivery, pickup, radius, image_file_paths`

// StoreRepository implements repository.StoreRepository for PostgreSQL.
type StoreRepository struct{}

// NewStoreRepository creates a new StoreRepository.
func NewStoreRepository() repository.StoreRepository {
	return &StoreRepository{}
}

// CreateStore inserts a new store using the provided DBExecutor.
func (r *StoreRepository) CreateStore(ctx context.Context, q repository.DBExecutor, store *domain.StoreCredentials) error {
	query := `INSERT INTO store (store_name, store_phone_number, store_email, store_password)
              VALUES ($1, $2, $3, $4) RETURNING store_id`
	err := q.GetContext(ctx, &store.ID, query, store.Name, store.PhoneNumber, store.Email, store.PasswordHash)
	if err != nil {
		return dbError(err, "failed to create store")
	}
	return nil
}

// GetStoreInfoByID retrieves a store with categories and photos folded into
// comma-joined strings. Grouping by store_id yields at most one row.
func (r *StoreRepository) GetStoreInfoByID(ctx context.Context, q repository.DBExecutor, storeID int64) (*domain.StoreInfo, error) {
	var info domain.StoreInfo
	query := `
		SELECT ` + storeColumns + `,
		       string_agg(DISTINCT category.category_name, ', ' ORDER BY category.category_name) AS categories,
		       string_agg(DISTINCT store_photo.photo_file_path, ', ' ORDER BY store_photo.photo_file_path) AS photos
		FROM store
		LEFT JOIN store_category ON store.store_id = store_category.store_id
		LEFT JOIN category ON store_category.category_id = category.category_id
		LEFT JOIN store_photo ON store.store_id = store_photo.store_id
		WHERE store.store_id = $1
		GROUP BY store.store_id`
	err := q.GetContext(ctx, &info, query, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get store info by ID %d", storeID)
	}
	return &info, nil
}

// GetStoreCredentialsByEmail retrieves the store and its password hash by login email, ignoring case.
func (r *StoreRepository) GetStoreCredentialsByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.StoreCredentials, error) {
	var creds domain.StoreCredentials
	query := `SELECT ` + storeColumns + `, store.store_password FROM store WHERE lower(store.store_email) = lower($1)`
	err := q.GetContext(ctx, &creds, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get store by email '%s'", email)
	}
	return &creds, nil
}

// UpdateStoreAddress sets the address of a store.
func (r *StoreRepository) UpdateStoreAddress(ctx context.Context, q repository.DBExecutor, storeID int64, address string) error {
	query := `UPDATE store SET store_address = $1 WHERE store_id = $2`
	result, err := q.ExecContext(ctx, query, address, storeID)
	if err != nil {
		return dbError(err, "failed to update address for store %d", storeID)
	}
	return requireAffected(result, "store", storeID)
}

// UpdateStoreDelivery sets the delivery options of a store.
func (r *StoreRepository) UpdateStoreDelivery(ctx context.Context, q repository.DBExecutor, storeID int64, delivery, pickup bool, radius int) error {
	query := `UPDATE store SET delivery = $1, pickup = $2, radius = $3 WHERE store_id = $4`
	result, err := q.ExecContext(ctx, query, delivery, pickup, radius, storeID)
	if err != nil {
		return dbError(err, "failed to update delivery options for store %d", storeID)
	}
	return requireAffected(result, "store", storeID)
}

// AddStorePhoto attaches a photo path to an existing store.
// Selecting from store makes a missing store insert nothing rather than violate the foreign key.
func (r *StoreRepository) AddStorePhoto(ctx context.Context, q repository.DBExecutor, storeID int64, photoPath string) error {
	query := `INSERT INTO store_photo (store_id, photo_file_path)
              SELECT store_id, $2 FROM store WHERE store_id = $1`
	result, err := q.ExecContext(ctx, query, storeID, photoPath)
	if err != nil {
		return dbError(err, "failed to add photo for store %d", storeID)
	}
	return requireAffected(result, "store", storeID)
}

// GetStorePhotos lists photo paths of a store in upload order.
func (r *StoreRepository) GetStorePhotos(ctx context.Context, q repository.DBExecutor, storeID int64) ([]string, error) {
	photos := []string{}
	query := `SELECT photo_file_path FROM store_photo WHERE store_id = $1 ORDER BY store_photo_id`
	if err := q.SelectContext(ctx, &photos, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch photos for store %d", storeID)
	}
	return photos, nil
}

// AddStoreCategories links categories to a store with a single multi-row insert.
// Links that already exist are left untouched.
func (r *StoreRepository) AddStoreCategories(ctx context.Context, q repository.DBExecutor, storeID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	query := `INSERT INTO store_category (store_id, category_id)
              SELECT $1, unnest($2::bigint[])
              ON CONFLICT (store_id, category_id) DO NOTHING`
	if _, err := q.ExecContext(ctx, query, storeID, pq.Array(categoryIDs)); err != nil {
		return dbError(err, "failed to add categories to store %d", storeID)
	}
	return nil
}

// GetAllStores lists every row of the storesandimages view.
func (r *StoreRepository) GetAllStores(ctx context.Context, q repository.DBExecutor) ([]domain.StoreListing, error) {
	stores := []domain.StoreListing{}
	query := `SELECT ` + storeListingColumns + ` FROM storesandimages ORDER BY store_id ASC`
	if err := q.SelectContext(ctx, &stores, query); err != nil {
		return nil, dbError(err, "failed to fetch stores")
	}
	return stores, nil
}

// GetRandomStores samples up to limit rows of the storesandimages view.
func (r *StoreRepository) GetRandomStores(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.StoreListing, error) {
	stores := []domain.StoreListing{}
	query := `SELECT ` + storeListingColumns + ` FROM storesandimages ORDER BY random() LIMIT $1`
	if err := q.SelectContext(ctx, &stores, query, limit); err != nil {
		return nil, dbError(err, "failed to sample %d stores", limit)
	}
	return stores, nil
}

// requireAffected turns a zero-row write into util.ErrNotFound.
func requireAffected(result sql.Result, entity string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s %d: %w", entity, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, util.ErrNotFound)
	}
	return nil
}
