// internal/domain/category.go
package domain

// Category is a store category such as "bakery" or "art".
type Category struct {
	ID   int64  `db:"category_id" json:"category_id"`
	Name string `db:"category_name" json:"category_name"` // Unique
}
