package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"logistik_backend/internal/auth"
	"logistik_backend/internal/config"
	"logistik_backend/internal/email"
	"logistik_backend/internal/handlers"
	"logistik_backend/internal/logger"
	"logistik_backend/internal/middleware"
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
	"logistik_backend/internal/routes"
	"logistik_backend/internal/services"
	"logistik_backend/internal/validator"
	"logistik_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Token{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Worker lifetime is bound to the process signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and the delivery worker
// and returns the configured gin engine. The worker stops when ctx is
// canceled.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := newEmailProvider(cfg)

	tokenManager := auth.NewTokenManager(
		cfg.JWT.Issuer,
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.ResetSecret,
		cfg.AccessTTL(),
		cfg.RefreshTTL(),
		cfg.ResetTTL(),
	)

	userRepo := repositories.NewUserRepository(gormDB)
	packageRepo := repositories.NewPackageRepository(gormDB)
	tokenRepo := repositories.NewTokenRepository(gormDB)

	serviceContainer := &services.ServiceContainer{
		AuthService: services.NewAuthService(
			userRepo, tokenRepo, tokenManager, emailProvider,
			cfg.App.Name, cfg.App.BaseURL, cfg.ResetTTL(),
		),
		UserService:    services.NewUserService(userRepo),
		PackageService: services.NewPackageService(packageRepo, emailProvider, cfg.TransitionInterval()),
		EmailProvider:  emailProvider,
	}

	deliveryWorker := workers.NewDeliveryWorker(
		packageRepo, userRepo, emailProvider,
		cfg.SweepInterval(), cfg.TransitionInterval(),
	)
	deliveryWorker.Start(ctx)

	appHandlers := initializeHandlers(serviceContainer)
	authMiddleware := middleware.AuthMiddleware(tokenManager, userRepo)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, authMiddleware)

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured; outgoing email is mocked")
		return email.NewMockProvider()
	}

	provider, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	return provider
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, container.UserService, container.PackageService),
		PackageHandler: handlers.NewPackageHandler(baseHandler, container.PackageService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
