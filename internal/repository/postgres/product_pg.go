// internal/repository/postgres/product_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

const productColumns = `product.product_id, product.store_id, product.product_name, product.product_category,
	product.product_description, product.product_price, product.product_delivery_fee`

const productListingColumns = `product_id, store_id, store_name, product_name, product_category,
	product_description, product_price, product_delivery_fee, image_file_paths`

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository() repository.ProductRepository {
	return &ProductRepository{}
}

// CreateProduct inserts a new product using the provided DBExecutor.
func (r *ProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	query := `INSERT INTO product (store_id, product_name, product_category, product_description, product_price, product_delivery_fee)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING product_id`
	err := q.GetContext(ctx, &product.ID, query,
		product.StoreID,
		product.Name,
		product.Category,
		product.Description,
		product.Price,
		product.DeliveryFee,
	)
	if err != nil {
		return dbError(err, "failed to create product for store %d", product.StoreID)
	}
	return nil
}

// AddProductPhoto attaches a photo path to a product.
func (r *ProductRepository) AddProductPhoto(ctx context.Context, q repository.DBExecutor, productID int64, photoPath string) error {
	query := `INSERT INTO product_photo (product_id, photo_file_path) VALUES ($1, $2)`
	if _, err := q.ExecContext(ctx, query, productID, photoPath); err != nil {
		return dbError(err, "failed to add photo for product %d", productID)
	}
	return nil
}

// GetProductsByStoreID returns the flattened product, store and product_photo left join.
func (r *ProductRepository) GetProductsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.ProductPhotoRow, error) {
	rows := []domain.ProductPhotoRow{}
	query := `
		SELECT ` + productColumns + `, store.store_name, product_photo.photo_file_path
		FROM product
		LEFT JOIN store ON store.store_id = product.store_id
		LEFT JOIN product_photo ON product.product_id = product_photo.product_id
		WHERE store.store_id = $1
		ORDER BY product.product_id, product_photo.product_photo_id`
	if err := q.SelectContext(ctx, &rows, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch products for store %d", storeID)
	}
	return rows, nil
}

// GetProductListing retrieves a single row of the productsandimages view.
func (r *ProductRepository) GetProductListing(ctx context.Context, q repository.DBExecutor, productID int64) (*domain.ProductListing, error) {
	var listing domain.ProductListing
	query := `SELECT ` + productListingColumns + ` FROM productsandimages WHERE product_id = $1`
	err := q.GetContext(ctx, &listing, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get product listing %d", productID)
	}
	return &listing, nil
}

// GetProductListingsByStoreID lists the productsandimages rows of one store.
func (r *ProductRepository) GetProductListingsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.ProductListing, error) {
	listings := []domain.ProductListing{}
	query := `SELECT ` + productListingColumns + ` FROM productsandimages WHERE store_id = $1 ORDER BY product_id ASC`
	if err := q.SelectContext(ctx, &listings, query, storeID); err != nil {
		return nil, dbError(err, "failed to fetch product listings for store %d", storeID)
	}
	return listings, nil
}

// GetAllProducts lists every row of the productsandimages view.
func (r *ProductRepository) GetAllProducts(ctx context.Context, q repository.DBExecutor) ([]domain.ProductListing, error) {
	listings := []domain.ProductListing{}
	query := `SELECT ` + productListingColumns + ` FROM productsandimages ORDER BY product_id ASC`
	if err := q.SelectContext(ctx, &listings, query); err != nil {
		return nil, dbError(err, "failed to fetch products")
	}
	return listings, nil
}

// GetRandomProducts samples up to limit rows of the productsandimages view.
func (r *ProductRepository) GetRandomProducts(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.ProductListing, error) {
	listings := []domain.ProductListing{}
	query := `SELECT ` + productListingColumns + ` FROM productsandimages ORDER BY random() LIMIT $1`
	if err := q.SelectContext(ctx, &listings, query, limit); err != nil {
		return nil, dbError(err, "failed to sample %d products", limit)
	}
	return listings, nil
}

// SearchProducts returns listings whose name or category contains term, ignoring case.
func (r *ProductRepository) SearchProducts(ctx context.Context, q repository.DBExecutor, term string) ([]domain.ProductListing, error) {
	listings := []domain.ProductListing{}
	query := `
		SELECT ` + productListingColumns + `
		FROM productsandimages
		WHERE product_name ILIKE $1 OR product_category ILIKE $1
		ORDER BY product_id ASC`
	if err := q.SelectContext(ctx, &listings, query, containsPattern(term)); err != nil {
		return nil, dbError(err, "failed to search products for '%s'", term)
	}
	return listings, nil
}
