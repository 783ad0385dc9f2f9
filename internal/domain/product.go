// internal/domain/product.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Product represents an item a store sells.
type Product struct {
	ID          int64           `db:"product_id" json:"product_id"` // Primary key, BIGSERIAL in DB
	StoreID     int64           `db:"store_id" json:"store_id"`     // Owning store
	Name        string          `db:"product_name" json:"product_name"`
	Category    string          `db:"product_category" json:"product_category"` // Free-text category, searched with ILIKE
	Description string          `db:"product_description" json:"product_description"`
	Price       decimal.Decimal `db:"product_price" json:"product_price"`               // NUMERIC(12, 2) in DB
	DeliveryFee decimal.Decimal `db:"product_delivery_fee" json:"product_delivery_fee"` // NUMERIC(12, 2) in DB
}

// NewProduct creates a new Product instance for storeID.
func NewProduct(storeID int64, name, category, description string, price, deliveryFee decimal.Decimal) *Product {
	return &Product{
		StoreID:     storeID,
		Name:        name,
		Category:    category,
		Description: description,
		Price:       price,
		DeliveryFee: deliveryFee,
	}
}

// ProductPhotoRow is one row of the product, store and product_photo left join.
// A product with N photos appears N times; a product without photos appears once with a nil path.
type ProductPhotoRow struct {
	Product
	StoreName     string  `db:"store_name" json:"store_name"`
	PhotoFilePath *string `db:"photo_file_path" json:"photo_file_path"`
}

// ProductWithPhotos is a product with its photo paths collected.
type ProductWithPhotos struct {
	Product
	StoreName string   `json:"store_name"`
	Photos    []string `json:"photos"`
}

// GroupProductPhotos folds flattened join rows into one entry per product,
// keeping the order in which products first appear.
func GroupProductPhotos(rows []ProductPhotoRow) []ProductWithPhotos {
	grouped := make([]ProductWithPhotos, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(grouped)
			index[row.ID] = i
			grouped = append(grouped, ProductWithPhotos{Product: row.Product, StoreName: row.StoreName})
		}
		if row.PhotoFilePath != nil {
			grouped[i].Photos = append(grouped[i].Photos, *row.PhotoFilePath)
		}
	}
	return grouped
}

// ProductListing is a row of the productsandimages view.
type ProductListing struct {
	Product
	StoreName      string  `db:"store_name" json:"store_name"`
	ImageFilePaths *string `db:"image_file_paths" json:"image_file_paths"`
}

// Images splits ImageFilePaths into file paths.
func (p ProductListing) Images() []string {
	return splitList(p.ImageFilePaths)
}
