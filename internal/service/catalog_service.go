// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"

	"github.com/shopspring/decimal"
)

// DefaultSampleSize is used by the random listing reads when no size is given.
const DefaultSampleSize = 100

// CatalogService defines the interface for store, product and category logic.
type CatalogService interface {
	GetProductsByStoreID(ctx context.Context, storeID int64) ([]domain.ProductPhotoRow, error)
	GetStoreInfo(ctx context.Context, storeID int64) (*domain.StoreInfo, error)
	AddShop(ctx context.Context, signup domain.ShopSignup) (*domain.StoreInfo, error)
	UpdateShopAddress(ctx context.Context, storeID int64, address string) (*domain.StoreInfo, error)
	UpdateShopDelivery(ctx context.Context, storeID int64, delivery, pickup bool, radius int) (*domain.StoreInfo, error)
	UpdateShopPhoto(ctx context.Context, storeID int64, photoPath string) (*domain.StoreInfo, error)
	GetShopPhotos(ctx context.Context, storeID int64) ([]string, error)
	GetCategoryIDsByNames(ctx context.Context, names []string) ([]int64, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	UpdateShopCategories(ctx context.Context, storeID int64, names []string) (*domain.StoreInfo, error)
	GetAllStores(ctx context.Context) ([]domain.StoreListing, error)
	GetRandomStores(ctx context.Context, n int) ([]domain.StoreListing, error)
	GetAllProducts(ctx context.Context) ([]domain.ProductListing, error)
	GetRandomProducts(ctx context.Context, n int) ([]domain.ProductListing, error)
	GetProductListing(ctx context.Context, productID int64) (*domain.ProductListing, error)
	GetProductListingsByStoreID(ctx context.Context, storeID int64) ([]domain.ProductListing, error)
	AddProduct(ctx context.Context, storeID int64, name, category, description string, price, deliveryFee decimal.Decimal) (*domain.Product, error)
	AddProductPhoto(ctx context.Context, productID int64, photoPath string) (*domain.ProductListing, error)
	SearchProducts(ctx context.Context, term string) ([]domain.ProductListing, error)
	GetShopOrders(ctx context.Context, storeID int64) ([]domain.Order, error)
	GetShopOrderDetails(ctx context.Context, storeID int64) ([]domain.OrderDetail, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	tx           Transactor
	dbExecutor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(
	tx Transactor,
	dbExecutor repository.DBExecutor,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) CatalogService {
	return &catalogService{
		tx:           tx,
		dbExecutor:   dbExecutor,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// storeNotFound narrows a repository not-found into ErrStoreNotFound.
func storeNotFound(err error) error {
	if util.IsError(err, util.ErrNotFound) {
		return util.ErrStoreNotFound
	}
	return err
}

func (s *catalogService) GetProductsByStoreID(ctx context.Context, storeID int64) ([]domain.ProductPhotoRow, error) {
	rows, err := s.productRepo.GetProductsByStoreID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get products by store: %w", err)
	}
	return rows, nil
}

func (s *catalogService) GetStoreInfo(ctx context.Context, storeID int64) (*domain.StoreInfo, error) {
	info, err := s.storeRepo.GetStoreInfoByID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store info %d: %w", storeID, storeNotFound(err))
	}
	return info, nil
}

// AddShop registers a store owner and returns the new store's info.
// A phone number or email that is already registered fails with util.ErrDuplicateEntry.
func (s *catalogService) AddShop(ctx context.Context, signup domain.ShopSignup) (*domain.StoreInfo, error) {
	if err := signup.Validate(); err != nil {
		return nil, fmt.Errorf("add shop: %w: %w", util.ErrInvalidInput, err)
	}

	hash, err := hashPassword(signup.Password)
	if err != nil {
		return nil, fmt.Errorf("add shop: %w", err)
	}

	store := domain.NewStoreCredentials(signup.Name, signup.PhoneNumber, signup.Email, hash)
	var info *domain.StoreInfo
	err = s.tx.withTx(ctx, "add shop", func(q repository.DBExecutor) error {
		if err := s.storeRepo.CreateStore(ctx, q, store); err != nil {
			return fmt.Errorf("add shop: failed to create store: %w", err)
		}
		info, err = s.storeRepo.GetStoreInfoByID(ctx, q, store.ID)
		if err != nil {
			return fmt.Errorf("add shop: failed to re-fetch store %d: %w", store.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Store registered", "store_id", info.ID)
	return info, nil
}

func (s *catalogService) UpdateShopAddress(ctx context.Context, storeID int64, address string) (*domain.StoreInfo, error) {
	if err := s.storeRepo.UpdateStoreAddress(ctx, s.dbExecutor, storeID, address); err != nil {
		return nil, fmt.Errorf("update shop address: %w", storeNotFound(err))
	}
	return s.refetchStore(ctx, "update shop address", storeID)
}

func (s *catalogService) UpdateShopDelivery(ctx context.Context, storeID int64, delivery, pickup bool, radius int) (*domain.StoreInfo, error) {
	if radius < 0 {
		return nil, fmt.Errorf("update shop delivery: negative radius %d: %w", radius, util.ErrInvalidInput)
	}
	if err := s.storeRepo.UpdateStoreDelivery(ctx, s.dbExecutor, storeID, delivery, pickup, radius); err != nil {
		return nil, fmt.Errorf("update shop delivery: %w", storeNotFound(err))
	}
	return s.refetchStore(ctx, "update shop delivery", storeID)
}

// UpdateShopPhoto attaches another photo to the store. Existing photos are kept.
func (s *catalogService) UpdateShopPhoto(ctx context.Context, storeID int64, photoPath string) (*domain.StoreInfo, error) {
	if photoPath == "" {
		return nil, fmt.Errorf("update shop photo: empty path: %w", util.ErrInvalidInput)
	}
	if err := s.storeRepo.AddStorePhoto(ctx, s.dbExecutor, storeID, photoPath); err != nil {
		return nil, fmt.Errorf("update shop photo: %w", storeNotFound(err))
	}
	return s.refetchStore(ctx, "update shop photo", storeID)
}

func (s *catalogService) refetchStore(ctx context.Context, op string, storeID int64) (*domain.StoreInfo, error) {
	info, err := s.storeRepo.GetStoreInfoByID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to re-fetch store %d: %w", op, storeID, storeNotFound(err))
	}
	return info, nil
}

func (s *catalogService) GetShopPhotos(ctx context.Context, storeID int64) ([]string, error) {
	photos, err := s.storeRepo.GetStorePhotos(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get shop photos: %w", err)
	}
	return photos, nil
}

func (s *catalogService) GetCategoryIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	ids, err := s.categoryRepo.GetCategoryIDsByNames(ctx, s.dbExecutor, names)
	if err != nil {
		return nil, fmt.Errorf("get category ids: %w", err)
	}
	return ids, nil
}

func (s *catalogService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get all categories: %w", err)
	}
	return categories, nil
}

// UpdateShopCategories links the named categories to the store and returns
// the refreshed info. Either every category is attached or none is.
func (s *catalogService) UpdateShopCategories(ctx context.Context, storeID int64, names []string) (*domain.StoreInfo, error) {
	var info *domain.StoreInfo
	err := s.tx.withTx(ctx, "update shop categories", func(q repository.DBExecutor) error {
		ids, err := s.categoryRepo.GetCategoryIDsByNames(ctx, q, names)
		if err != nil {
			return fmt.Errorf("update shop categories: %w", err)
		}
		if err := s.storeRepo.AddStoreCategories(ctx, q, storeID, ids); err != nil {
			if util.IsError(err, util.ErrInvalidInput) {
				return fmt.Errorf("update shop categories: %w", util.ErrStoreNotFound)
			}
			return fmt.Errorf("update shop categories: failed to link categories: %w", err)
		}
		info, err = s.storeRepo.GetStoreInfoByID(ctx, q, storeID)
		if err != nil {
			return fmt.Errorf("update shop categories: failed to re-fetch store %d: %w", storeID, storeNotFound(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Store categories updated", "store_id", storeID, "categories", len(names))
	return info, nil
}

func (s *catalogService) GetAllStores(ctx context.Context) ([]domain.StoreListing, error) {
	stores, err := s.storeRepo.GetAllStores(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get all stores: %w", err)
	}
	return stores, nil
}

// GetRandomStores samples n stores; n <= 0 samples DefaultSampleSize.
func (s *catalogService) GetRandomStores(ctx context.Context, n int) ([]domain.StoreListing, error) {
	if n <= 0 {
		n = DefaultSampleSize
	}
	stores, err := s.storeRepo.GetRandomStores(ctx, s.dbExecutor, n)
	if err != nil {
		return nil, fmt.Errorf("get random stores: %w", err)
	}
	return stores, nil
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]domain.ProductListing, error) {
	products, err := s.productRepo.GetAllProducts(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}
	return products, nil
}

// GetRandomProducts samples n products; n <= 0 samples DefaultSampleSize.
func (s *catalogService) GetRandomProducts(ctx context.Context, n int) ([]domain.ProductListing, error) {
	if n <= 0 {
		n = DefaultSampleSize
	}
	products, err := s.productRepo.GetRandomProducts(ctx, s.dbExecutor, n)
	if err != nil {
		return nil, fmt.Errorf("get random products: %w", err)
	}
	return products, nil
}

func (s *catalogService) GetProductListing(ctx context.Context, productID int64) (*domain.ProductListing, error) {
	listing, err := s.productRepo.GetProductListing(ctx, s.dbExecutor, productID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, fmt.Errorf("get product %d: %w", productID, util.ErrProductNotFound)
		}
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}
	return listing, nil
}

func (s *catalogService) GetProductListingsByStoreID(ctx context.Context, storeID int64) ([]domain.ProductListing, error) {
	listings, err := s.productRepo.GetProductListingsByStoreID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get product listings by store: %w", err)
	}
	return listings, nil
}

func (s *catalogService) AddProduct(ctx context.Context, storeID int64, name, category, description string, price, deliveryFee decimal.Decimal) (*domain.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("add product: empty name: %w", util.ErrInvalidInput)
	}
	if price.IsNegative() || deliveryFee.IsNegative() {
		return nil, fmt.Errorf("add product: negative price or fee: %w", util.ErrInvalidInput)
	}

	product := domain.NewProduct(storeID, name, category, description, price, deliveryFee)
	if err := s.productRepo.CreateProduct(ctx, s.dbExecutor, product); err != nil {
		if util.IsError(err, util.ErrInvalidInput) {
			return nil, fmt.Errorf("add product: %w", util.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.logger.Debug("Product added", "store_id", storeID, "product_id", product.ID)
	return product, nil
}

// AddProductPhoto attaches a photo and returns the refreshed listing.
func (s *catalogService) AddProductPhoto(ctx context.Context, productID int64, photoPath string) (*domain.ProductListing, error) {
	if photoPath == "" {
		return nil, fmt.Errorf("add product photo: empty path: %w", util.ErrInvalidInput)
	}

	var listing *domain.ProductListing
	err := s.tx.withTx(ctx, "add product photo", func(q repository.DBExecutor) error {
		if err := s.productRepo.AddProductPhoto(ctx, q, productID, photoPath); err != nil {
			if util.IsError(err, util.ErrNotFound) || util.IsError(err, util.ErrInvalidInput) {
				return fmt.Errorf("add product photo: %w", util.ErrProductNotFound)
			}
			return fmt.Errorf("add product photo: %w", err)
		}
		var err error
		listing, err = s.productRepo.GetProductListing(ctx, q, productID)
		if err != nil {
			return fmt.Errorf("add product photo: failed to re-fetch product %d: %w", productID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// SearchProducts matches term against product name or category, case-insensitively.
func (s *catalogService) SearchProducts(ctx context.Context, term string) ([]domain.ProductListing, error) {
	products, err := s.productRepo.SearchProducts(ctx, s.dbExecutor, term)
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", term, err)
	}
	return products, nil
}

func (s *catalogService) GetShopOrders(ctx context.Context, storeID int64) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByStoreID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get shop orders: %w", err)
	}
	return orders, nil
}

func (s *catalogService) GetShopOrderDetails(ctx context.Context, storeID int64) ([]domain.OrderDetail, error) {
	details, err := s.orderRepo.GetOrderDetailsByStoreID(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get shop order details: %w", err)
	}
	return details, nil
}
