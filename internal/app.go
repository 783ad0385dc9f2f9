// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"localscoop/internal/config"
	"localscoop/internal/repository"
	"localscoop/internal/repository/postgres"
	"localscoop/internal/service"
	"localscoop/internal/util"
	"localscoop/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	StoreRepository    repository.StoreRepository
	ProductRepository  repository.ProductRepository
	CategoryRepository repository.CategoryRepository
	BuyerRepository    repository.BuyerRepository
	CartRepository     repository.CartRepository
	ChatRepository     repository.ChatRepository
	OrderRepository    repository.OrderRepository

	// Services
	CatalogService  service.CatalogService
	IdentityService service.IdentityService
	CartService     service.CartService
	ChatService     service.ChatService
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		app.Logger = util.GetLogger()
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.Env, cfg.SlogLevel())
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Apply schema migrations
	if cfg.Migrate {
		if err := db.Migrate(ctx, cfg.DB, app.Logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// 4. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	app.wire(database)
	app.Logger.Info("Repositories and services initialized.")
	return nil
}

// wire builds repositories and services on top of database.
func (app *Application) wire(database *sqlx.DB) {
	app.StoreRepository = postgres.NewStoreRepository()
	app.ProductRepository = postgres.NewProductRepository()
	app.CategoryRepository = postgres.NewCategoryRepository()
	app.BuyerRepository = postgres.NewBuyerRepository()
	app.CartRepository = postgres.NewCartRepository()
	app.ChatRepository = postgres.NewChatRepository()
	app.OrderRepository = postgres.NewOrderRepository()

	// *sqlx.DB is both the DBTxBeginner and the DBExecutor for non-transactional reads
	tx := service.NewTransactor(database)
	app.CatalogService = service.NewCatalogService(
		tx,
		database,
		app.StoreRepository,
		app.ProductRepository,
		app.CategoryRepository,
		app.OrderRepository,
		app.Logger,
	)
	app.IdentityService = service.NewIdentityService(database, app.StoreRepository, app.BuyerRepository, app.Logger)
	app.CartService = service.NewCartService(tx, database, app.CartRepository, app.Logger)
	app.ChatService = service.NewChatService(database, app.ChatRepository)
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
