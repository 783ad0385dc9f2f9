// internal/service/identity_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

// IdentityService defines the interface for login and buyer account logic.
type IdentityService interface {
	AuthenticateShopOwner(ctx context.Context, email, password string) (*domain.Store, error)
	AuthenticateBuyer(ctx context.Context, email, password string) (*domain.Buyer, error)
	RegisterBuyer(ctx context.Context, signup domain.BuyerSignup) (*domain.Buyer, error)
	GetAllBuyers(ctx context.Context) ([]domain.Buyer, error)
	GetBuyer(ctx context.Context, buyerID int64) (*domain.Buyer, error)
}

// identityService implements the IdentityService interface.
type identityService struct {
	dbExecutor repository.DBExecutor
	storeRepo  repository.StoreRepository
	buyerRepo  repository.BuyerRepository
	logger     *slog.Logger
}

// NewIdentityService creates a new instance of IdentityService.
func NewIdentityService(
	dbExecutor repository.DBExecutor,
	storeRepo repository.StoreRepository,
	buyerRepo repository.BuyerRepository,
	logger *slog.Logger,
) IdentityService {
	return &identityService{
		dbExecutor: dbExecutor,
		storeRepo:  storeRepo,
		buyerRepo:  buyerRepo,
		logger:     logger,
	}
}

// AuthenticateShopOwner returns the store whose email and password match.
// An unknown email and a wrong password both fail with util.ErrInvalidCredentials.
func (s *identityService) AuthenticateShopOwner(ctx context.Context, email, password string) (*domain.Store, error) {
	creds, err := s.storeRepo.GetStoreCredentialsByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, rejectUnknownAccount(password)
		}
		return nil, fmt.Errorf("authenticate shop owner: %w", err)
	}
	if err := checkPassword(creds.PasswordHash, password); err != nil {
		s.logger.Debug("Shop owner login rejected", "store_id", creds.ID)
		return nil, err
	}
	return &creds.Store, nil
}

// AuthenticateBuyer returns the buyer whose email and password match.
func (s *identityService) AuthenticateBuyer(ctx context.Context, email, password string) (*domain.Buyer, error) {
	creds, err := s.buyerRepo.GetBuyerCredentialsByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, rejectUnknownAccount(password)
		}
		return nil, fmt.Errorf("authenticate buyer: %w", err)
	}
	if err := checkPassword(creds.PasswordHash, password); err != nil {
		s.logger.Debug("Buyer login rejected", "buyer_id", creds.ID)
		return nil, err
	}
	return &creds.Buyer, nil
}

func (s *identityService) RegisterBuyer(ctx context.Context, signup domain.BuyerSignup) (*domain.Buyer, error) {
	if err := signup.Validate(); err != nil {
		return nil, fmt.Errorf("register buyer: %w: %w", util.ErrInvalidInput, err)
	}

	hash, err := hashPassword(signup.Password)
	if err != nil {
		return nil, fmt.Errorf("register buyer: %w", err)
	}

	buyer := domain.NewBuyerCredentials(signup.FirstName, signup.LastName, signup.Email, hash)
	if err := s.buyerRepo.CreateBuyer(ctx, s.dbExecutor, buyer); err != nil {
		return nil, fmt.Errorf("register buyer: %w", err)
	}

	s.logger.Info("Buyer registered", "buyer_id", buyer.ID)
	return &buyer.Buyer, nil
}

func (s *identityService) GetAllBuyers(ctx context.Context) ([]domain.Buyer, error) {
	buyers, err := s.buyerRepo.GetAllBuyers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get all buyers: %w", err)
	}
	return buyers, nil
}

func (s *identityService) GetBuyer(ctx context.Context, buyerID int64) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.GetBuyerByID(ctx, s.dbExecutor, buyerID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrBuyerNotFound
		}
		return nil, fmt.Errorf("get buyer %d: %w", buyerID, err)
	}
	return buyer, nil
}
