package app

import (
	"errors"
	"fmt"

	"gigslk_backend/database"
	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/config"
	"gigslk_backend/internal/handlers"
	"gigslk_backend/internal/logger"
	"gigslk_backend/internal/middleware"
	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/routes"
	"gigslk_backend/internal/services"
	"gigslk_backend/internal/storage"
	"gigslk_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := auth.Init(cfg.JWT.Secret, cfg.JWT.TTL); err != nil {
		logger.Fatal("Failed to initialize JWT auth", "error", err)
	}

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to migrate database schema", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer, storageInstance)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	// Uploaded media is served straight off disk under the public prefix.
	ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	gigRepo := repositories.NewGigRepository()
	gigRequestRepo := repositories.NewGigRequestRepository()
	bookingRepo := repositories.NewBookingRepository()
	notificationRepo := repositories.NewNotificationRepository()
	chatRepo := repositories.NewChatRepository()

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo, profileRepo),
		UserService:       services.NewUserService(userRepo, profileRepo),
		ProfileService:    services.NewProfileService(userRepo, profileRepo, bookingRepo),
		GigService:        services.NewGigService(gigRepo, profileRepo),
		GigRequestService: services.NewGigRequestService(gigRepo, gigRequestRepo, profileRepo, userRepo, notificationRepo),
		BookingService:    services.NewBookingService(bookingRepo, notificationRepo),
		ChatService:       services.NewChatService(chatRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, container.UserService),
		HostHandler:       handlers.NewHostHandler(baseHandler, container.ProfileService, storageInstance),
		PerformerHandler:  handlers.NewPerformerHandler(baseHandler, container.ProfileService, storageInstance),
		GigHandler:        handlers.NewGigHandler(baseHandler, container.GigService),
		GigRequestHandler: handlers.NewGigRequestHandler(baseHandler, container.GigRequestService),
		BookingHandler:    handlers.NewBookingHandler(baseHandler, container.BookingService),
		ChatHandler:       handlers.NewChatHandler(baseHandler, container.ChatService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the configured admin account on first start. Admins
// get no role profile, so only the user row is written.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin email or password not configured. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", cfg.Admin.Email).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", cfg.Admin.Email)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	newAdmin := &models.User{
		Email:        cfg.Admin.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", cfg.Admin.Email)
	return tx.Commit().Error
}
