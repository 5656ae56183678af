package bootstrap

import (
	"fmt"
	"os"

	"go-product-catalog/config"
	"go-product-catalog/internal/infrastructure/database"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Products usecase.ProductUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB.URL(), cfg.DB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	app.Products = initializeUsecase(db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeUsecase wires the catalog layers together
func initializeUsecase(db *gorm.DB) usecase.ProductUsecase {
	log := logrus.StandardLogger()

	customValidator := validator.NewValidator()

	productRepo := repository.NewProductRepository(db)
	auditRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditRepo)

	return usecase.NewProductUsecase(db, log, customValidator, productRepo, auditService)
}

// Close closes all connections (database, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
