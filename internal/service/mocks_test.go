// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implements repository.DBExecutor by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// mockTransactor wires the transaction lifecycle to mockTxController.
func mockTransactor(beginner *MockDBBeginner, txController *MockTxController) Transactor {
	return Transactor{
		Beginner: beginner,
		Begin: func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return txController, nil
		},
		Commit: func(tx db.TxController) error {
			return txController.Commit()
		},
		Rollback: func(tx db.TxController) {
			_ = txController.Rollback()
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockStoreRepository is a mock implementation of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) CreateStore(ctx context.Context, q repository.DBExecutor, store *domain.StoreCredentials) error {
	args := m.Called(ctx, q, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetStoreInfoByID(ctx context.Context, q repository.DBExecutor, storeID int64) (*domain.StoreInfo, error) {
	args := m.Called(ctx, q, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreInfo), args.Error(1)
}

func (m *MockStoreRepository) GetStoreCredentialsByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.StoreCredentials, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreCredentials), args.Error(1)
}

func (m *MockStoreRepository) UpdateStoreAddress(ctx context.Context, q repository.DBExecutor, storeID int64, address string) error {
	args := m.Called(ctx, q, storeID, address)
	return args.Error(0)
}

func (m *MockStoreRepository) UpdateStoreDelivery(ctx context.Context, q repository.DBExecutor, storeID int64, delivery, pickup bool, radius int) error {
	args := m.Called(ctx, q, storeID, delivery, pickup, radius)
	return args.Error(0)
}

func (m *MockStoreRepository) AddStorePhoto(ctx context.Context, q repository.DBExecutor, storeID int64, photoPath string) error {
	args := m.Called(ctx, q, storeID, photoPath)
	return args.Error(0)
}

func (m *MockStoreRepository) GetStorePhotos(ctx context.Context, q repository.DBExecutor, storeID int64) ([]string, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStoreRepository) AddStoreCategories(ctx context.Context, q repository.DBExecutor, storeID int64, categoryIDs []int64) error {
	args := m.Called(ctx, q, storeID, categoryIDs)
	return args.Error(0)
}

func (m *MockStoreRepository) GetAllStores(ctx context.Context, q repository.DBExecutor) ([]domain.StoreListing, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.StoreListing), args.Error(1)
}

func (m *MockStoreRepository) GetRandomStores(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.StoreListing, error) {
	args := m.Called(ctx, q, limit)
	return args.Get(0).([]domain.StoreListing), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	args := m.Called(ctx, q, product)
	return args.Error(0)
}

func (m *MockProductRepository) AddProductPhoto(ctx context.Context, q repository.DBExecutor, productID int64, photoPath string) error {
	args := m.Called(ctx, q, productID, photoPath)
	return args.Error(0)
}

func (m *MockProductRepository) GetProductsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.ProductPhotoRow, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]domain.ProductPhotoRow), args.Error(1)
}

func (m *MockProductRepository) GetProductListing(ctx context.Context, q repository.DBExecutor, productID int64) (*domain.ProductListing, error) {
	args := m.Called(ctx, q, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductListing), args.Error(1)
}

func (m *MockProductRepository) GetProductListingsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.ProductListing, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]domain.ProductListing), args.Error(1)
}

func (m *MockProductRepository) GetAllProducts(ctx context.Context, q repository.DBExecutor) ([]domain.ProductListing, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.ProductListing), args.Error(1)
}

func (m *MockProductRepository) GetRandomProducts(ctx context.Context, q repository.DBExecutor, limit int) ([]domain.ProductListing, error) {
	args := m.Called(ctx, q, limit)
	return args.Get(0).([]domain.ProductListing), args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, q repository.DBExecutor, term string) ([]domain.ProductListing, error) {
	args := m.Called(ctx, q, term)
	return args.Get(0).([]domain.ProductListing), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetCategoryIDsByNames(ctx context.Context, q repository.DBExecutor, names []string) ([]int64, error) {
	args := m.Called(ctx, q, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCategoryRepository) GetAllCategories(ctx context.Context, q repository.DBExecutor) ([]domain.Category, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetOrdersByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.Order, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderDetailsByStoreID(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.OrderDetail, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]domain.OrderDetail), args.Error(1)
}

// MockBuyerRepository is a mock implementation of repository.BuyerRepository.
type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) CreateBuyer(ctx context.Context, q repository.DBExecutor, buyer *domain.BuyerCredentials) error {
	args := m.Called(ctx, q, buyer)
	return args.Error(0)
}

func (m *MockBuyerRepository) GetBuyerCredentialsByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.BuyerCredentials, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyerCredentials), args.Error(1)
}

func (m *MockBuyerRepository) GetAllBuyers(ctx context.Context, q repository.DBExecutor) ([]domain.Buyer, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) GetBuyerByID(ctx context.Context, q repository.DBExecutor, buyerID int64) (*domain.Buyer, error) {
	args := m.Called(ctx, q, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}

// MockCartRepository is a mock implementation of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetActiveCartID(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	args := m.Called(ctx, q, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) CreateActiveCart(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	args := m.Called(ctx, q, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) UpsertCartProduct(ctx context.Context, q repository.DBExecutor, cartID, productID int64) (*domain.CartLine, error) {
	args := m.Called(ctx, q, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartLine), args.Error(1)
}

func (m *MockCartRepository) GetCartItemsCount(ctx context.Context, q repository.DBExecutor, buyerID int64) (int64, error) {
	args := m.Called(ctx, q, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) GetCartItemsByBuyer(ctx context.Context, q repository.DBExecutor, buyerID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, q, buyerID)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetCartItemByProduct(ctx context.Context, q repository.DBExecutor, buyerID, productID int64) (*domain.CartItem, error) {
	args := m.Called(ctx, q, buyerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) AdjustCartItemQuantity(ctx context.Context, q repository.DBExecutor, cartProductID, buyerID, productID, delta int64) error {
	args := m.Called(ctx, q, cartProductID, buyerID, productID, delta)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCartItem(ctx context.Context, q repository.DBExecutor, cartProductID, buyerID int64) error {
	args := m.Called(ctx, q, cartProductID, buyerID)
	return args.Error(0)
}

// MockChatRepository is a mock implementation of repository.ChatRepository.
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateChat(ctx context.Context, q repository.DBExecutor, buyerID, storeID int64) (*domain.Chat, error) {
	args := m.Called(ctx, q, buyerID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepository) GetBuyerChats(ctx context.Context, q repository.DBExecutor, buyerID int64) ([]domain.Chat, error) {
	args := m.Called(ctx, q, buyerID)
	return args.Get(0).([]domain.Chat), args.Error(1)
}

func (m *MockChatRepository) GetSellerChats(ctx context.Context, q repository.DBExecutor, storeID int64) ([]domain.Chat, error) {
	args := m.Called(ctx, q, storeID)
	return args.Get(0).([]domain.Chat), args.Error(1)
}
