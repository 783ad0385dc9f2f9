// internal/repository/postgres/buyer_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

const buyerColumns = `buyer_id, buyer_firstname, buyer_lastname, buyer_email, buyer_phone_number,
	buyer_gender, buyer_date_of_birth, buyer_profile_photo, buyer_address`

// BuyerRepository implements repository.BuyerRepository for PostgreSQL.
type BuyerRepository struct{}

// NewBuyerRepository creates a new BuyerRepository.
func NewBuyerRepository() repository.BuyerRepository {
	return &BuyerRepository{}
}

// CreateBuyer inserts a new buyer using the provided DBExecutor.
func (r *BuyerRepository) CreateBuyer(ctx context.Context, q repository.DBExecutor, buyer *domain.BuyerCredentials) error {
	query := `INSERT INTO buyer (buyer_firstname, buyer_lastname, buyer_email, buyer_password, buyer_phone_number,
                                 buyer_gender, buyer_date_of_birth, buyer_profile_photo, buyer_address)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING buyer_id`
	err := q.GetContext(ctx, &buyer.ID, query,
		buyer.FirstName,
		buyer.LastName,
		buyer.Email,
		buyer.PasswordHash,
		buyer.PhoneNumber,
		buyer.Gender,
		buyer.DateOfBirth,
		buyer.ProfilePhoto,
		buyer.Address,
	)
	if err != nil {
		return dbError(err, "failed to create buyer")
	}
	return nil
}

// GetBuyerCredentialsByEmail retrieves the buyer and its password hash by login email, ignoring case.
func (r *BuyerRepository) GetBuyerCredentialsByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.BuyerCredentials, error) {
	var creds domain.BuyerCredentials
	query := `SELECT ` + buyerColumns + `, buyer_password FROM buyer WHERE lower(buyer_email) = lower($1)`
	err := q.GetContext(ctx, &creds, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get buyer by email '%s'", email)
	}
	return &creds, nil
}

// GetAllBuyers lists every buyer without password.
func (r *BuyerRepository) GetAllBuyers(ctx context.Context, q repository.DBExecutor) ([]domain.Buyer, error) {
	buyers := []domain.Buyer{}
	query := `SELECT ` + buyerColumns + ` FROM buyer ORDER BY buyer_id`
	if err := q.SelectContext(ctx, &buyers, query); err != nil {
		return nil, dbError(err, "failed to fetch buyers")
	}
	return buyers, nil
}

// GetBuyerByID retrieves a buyer by ID without password.
func (r *BuyerRepository) GetBuyerByID(ctx context.Context, q repository.DBExecutor, buyerID int64) (*domain.Buyer, error) {
	var buyer domain.Buyer
	query := `SELECT ` + buyerColumns + ` FROM buyer WHERE buyer_id = $1`
	err := q.GetContext(ctx, &buyer, query, buyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, dbError(err, "failed to get buyer by ID %d", buyerID)
	}
	return &buyer, nil
}
