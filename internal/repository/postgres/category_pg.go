// internal/repository/postgres/category_pg.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository() repository.CategoryRepository {
	return &CategoryRepository{}
}

// GetCategoryIDsByNames resolves all names with one set-membership query.
// Names match case-insensitively. The returned IDs follow the order of names;
// every unknown name is reported as given.
func (r *CategoryRepository) GetCategoryIDsByNames(ctx context.Context, q repository.DBExecutor, names []string) ([]int64, error) {
	if len(names) == 0 {
		return []int64{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = strings.ToLower(name)
	}

	categories := []domain.Category{}
	query := `SELECT category_id, category_name FROM category WHERE lower(category_name) = ANY($1)`
	if err := q.SelectContext(ctx, &categories, query, pq.Array(keys)); err != nil {
		return nil, dbError(err, "failed to look up categories %v", names)
	}

	idByName := make(map[string]int64, len(categories))
	for _, c := range categories {
		idByName[strings.ToLower(c.Name)] = c.ID
	}

	ids := make([]int64, 0, len(names))
	var missing []string
	for i, name := range names {
		id, ok := idByName[keys[i]]
		if !ok {
			missing = append(missing, name)
			continue
		}
		ids = append(ids, id)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrUnknownCategory, strings.Join(missing, ", "))
	}
	return ids, nil
}

// GetAllCategories lists every category by name.
func (r *CategoryRepository) GetAllCategories(ctx context.Context, q repository.DBExecutor) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT category_id, category_name FROM category ORDER BY category_name`
	if err := q.SelectContext(ctx, &categories, query); err != nil {
		return nil, dbError(err, "failed to fetch categories")
	}
	return categories, nil
}
