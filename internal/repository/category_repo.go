// internal/repository/category_repo.go
package repository

import (
	"context"

	"localscoop/internal/domain"
)

// CategoryRepository defines the interface for category lookups.
type CategoryRepository interface {
	// GetCategoryIDsByNames resolves names to IDs in input order.
	// Unknown names fail with util.ErrUnknownCategory.
	GetCategoryIDsByNames(ctx context.Context, q DBExecutor, names []string) ([]int64, error)
	GetAllCategories(ctx context.Context, q DBExecutor) ([]domain.Category, error)
}
