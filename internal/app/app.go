package app

import (
	"fmt"

	"github.com/servetisikli/takstore-backend/internal/config"
	"github.com/servetisikli/takstore-backend/internal/database"
	"github.com/servetisikli/takstore-backend/internal/email"
	"github.com/servetisikli/takstore-backend/internal/handlers"
	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/middleware"
	"github.com/servetisikli/takstore-backend/internal/payment"
	"github.com/servetisikli/takstore-backend/internal/repositories"
	"github.com/servetisikli/takstore-backend/internal/routes"
	"github.com/servetisikli/takstore-backend/internal/services"
	"github.com/servetisikli/takstore-backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads configuration, connects the database and serves the API.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, db)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, cfg.JWT.AccessSecret)

	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB) *services.ServiceContainer {
	emailProvider := buildEmailProvider(cfg)
	paymentProvider := buildPaymentProvider(cfg)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	authService := services.NewAuthService(userRepo, emailProvider, services.AuthConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		APIBaseURL:    cfg.Server.PublicURL,
		FrontendURL:   cfg.Frontend.BaseURL,
	})
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, paymentProvider, emailProvider, cfg.Payment.Currency)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		ProductService: productService,
		OrderService:   orderService,
	}
}

// buildEmailProvider uses the SMTP relay when configured and falls back to
// the logging mock in development.
func buildEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}

	provider, err := email.NewSMTPProvider(smtpCfg)
	if err != nil {
		if cfg.IsProduction() {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		logger.Warn("SMTP not configured, outbound email is mocked", "error", err)
		return NewMockEmailProvider()
	}

	logger.Info("SMTP provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

// buildPaymentProvider uses Stripe when a secret key is present and falls
// back to the auto-succeeding mock in development.
func buildPaymentProvider(cfg *config.Config) payment.Provider {
	if cfg.Payment.StripeSecretKey == "" {
		if cfg.IsProduction() {
			logger.Fatal("STRIPE_SECRET_KEY is required in production")
		}
		logger.Warn("Stripe not configured, payments are mocked")
		return NewMockPaymentProvider()
	}

	provider, err := payment.NewStripeProvider(cfg.Payment.StripeSecretKey)
	if err != nil {
		logger.Fatal("Failed to initialize Stripe provider", "error", err)
	}

	logger.Info("Stripe provider initialized")
	return provider
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		User:    handlers.NewUserHandler(baseHandler, sc.AuthService, sc.UserService, cfg.Frontend.BaseURL, cfg.IsProduction()),
		Product: handlers.NewProductHandler(baseHandler, sc.ProductService),
		Order:   handlers.NewOrderHandler(baseHandler, sc.OrderService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Frontend.CORSOriginBase))
	router.Use(middleware.SecurityHeadersMiddleware())
	return router
}
