package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/frozz/storefront/docs"
	"github.com/frozz/storefront/internal/api"
	"github.com/frozz/storefront/internal/api/handlers"
	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/config"
	"github.com/frozz/storefront/internal/health"
	"github.com/frozz/storefront/internal/metrics"
	repository "github.com/frozz/storefront/internal/repositories"
	service "github.com/frozz/storefront/internal/services"
	"github.com/frozz/storefront/internal/storage"
	"github.com/frozz/storefront/internal/telemetry"
	"github.com/frozz/storefront/pkg/pdf"
	"github.com/frozz/storefront/pkg/sendgrid"
	"github.com/frozz/storefront/pkg/telegram"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title						Storefront API
// @version					1.0
// @description				Catalog, carts, quotations and order tracking for the store.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT token.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracer, err := telemetry.InitTracer(context.Background(), &cfg.Tracing, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = repos.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		slog.Error("❌ Error applying migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics.RegisterDBStats(repos.DB)

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	sessionRepo := repository.NewSessionRepo(redisCache, cfg.Session.TTL)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	jwtKey := []byte(cfg.Security.JWTKey)
	media := storage.NewLocal(cfg.Media.Root)
	renderer := pdf.NewRenderer(&cfg.Store)
	telegramClient := telegram.NewClient(&cfg.Telegram)

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid is not configured, quotation copies will not be emailed")
	}

	if !telegramClient.Enabled() {
		slog.Warn("Telegram is not configured, new quotations will not be announced")
	}

	// Services
	cartService := service.NewCartService(repos.Carts, repos.Products, sessionRepo)
	userService := service.NewUserService(repos.Users, rateLimitRepo, cartService, jwtKey, cfg.Security.TokenTTL)
	clientService := service.NewClientService(repos.Users)
	categoryService := service.NewCategoryService(repos.Categories, redisCache)
	productService := service.NewProductService(repos.Products, repos.Categories, cfg.Store.LowStockThreshold)
	favoriteService := service.NewFavoriteService(repos.Favorites, productService)
	addressService := service.NewAddressService(repos.Addresses)
	rentalService := service.NewRentalService(repos.Rentals, productService)
	notificationService := service.NewNotificationService(repos.Notifications, telegramClient, emailService, cfg.Telegram.ChatID,
		service.StoreInfo{Name: cfg.Store.Name, Currency: cfg.Store.Currency})
	quotationService := service.NewQuotationService(service.QuotationDeps{
		Quotations:   repos.Quotations,
		Carts:        repos.Carts,
		Products:     repos.Products,
		Users:        repos.Users,
		Addresses:    repos.Addresses,
		Sessions:     sessionRepo,
		Notifier:     notificationService,
		Renderer:     renderer,
		Media:        media,
		MaxProofSize: cfg.Media.MaxProofSize,
	})
	quoteBuilderService := service.NewQuoteBuilderService(sessionRepo, repos.Products, repos.Users, quotationService)

	healthChecker, err := health.NewHealthHandler(cfg, health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := api.NewRouter(api.Handlers{
		Users:         handlers.NewUserHandler(userService),
		Clients:       handlers.NewClientHandler(clientService),
		Categories:    handlers.NewCategoryHandler(categoryService),
		Products:      handlers.NewProductHandler(productService),
		Cart:          handlers.NewCartHandler(cartService),
		Quotations:    handlers.NewQuotationHandler(quotationService, cfg.Media.MaxProofSize),
		QuoteBuilder:  handlers.NewQuoteBuilderHandler(quoteBuilderService),
		Favorites:     handlers.NewFavoriteHandler(favoriteService),
		Addresses:     handlers.NewAddressHandler(addressService),
		Rentals:       handlers.NewRentalHandler(rentalService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	}, middleware.NewAuthMiddleware(jwtKey))

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(cfg.Session.CookieName, cfg.Session.TTL)(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
