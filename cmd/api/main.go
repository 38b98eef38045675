package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/cache"
	"github.com/atolyemobilya/mobilya-api/internal/config"
	"github.com/atolyemobilya/mobilya-api/internal/database"
	"github.com/atolyemobilya/mobilya-api/internal/handler"
	"github.com/atolyemobilya/mobilya-api/internal/middleware"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/service"
)

// main is the application entrypoint for the Atölye Mobilya API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting mobilya api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 5. Initialize services
	settingsSvc := service.NewSettingsService(settingsRepo)
	quoteSvc := service.NewQuoteService(quoteRepo, settingsRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo)
	productSvc := service.NewProductService(productRepo)
	gallerySvc := service.NewGalleryService(galleryRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userSvc := service.NewUserService(userRepo)
	uploadSvc, err := service.NewUploadService(cfg)
	if err != nil {
		log.Error().Err(err).Msg("upload service initialization failed")
		fmt.Fprintf(os.Stderr, "upload service initialization failed: %v\n", err)
		os.Exit(1)
	}

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db, redisClient),
		Quote:    handler.NewQuoteHandler(quoteSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
		Order:    handler.NewOrderHandler(orderSvc),
		Product:  handler.NewProductHandler(productSvc),
		Gallery:  handler.NewGalleryHandler(gallerySvc),
		Review:   handler.NewReviewHandler(reviewSvc),
		Auth:     handler.NewAuthHandler(authSvc),
		User:     handler.NewUserHandler(userSvc),
		Upload:   handler.NewUploadHandler(uploadSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.Window)

	// 8. Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	router.Use(middleware.LoggingMiddleware())
	router.Static("/uploads", cfg.Upload.Dir)
	setupRoutes(router, handlers, jwtMw, rateLimiter, cfg)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Quote    *handler.QuoteHandler
	Settings *handler.SettingsHandler
	Order    *handler.OrderHandler
	Product  *handler.ProductHandler
	Gallery  *handler.GalleryHandler
	Review   *handler.ReviewHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Upload   *handler.UploadHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, h *Handlers, jwtMw *middleware.JWTMiddleware, rl *middleware.RateLimiter, cfg *config.Config) {
	api := router.Group("/api")
	api.Use(rl.Limit("api", cfg.RateLimit.APILimit))

	api.GET("/health", h.Health.GetHealth)

	// Public quote intake and price preview
	api.POST("/teklif", h.Quote.Create)
	api.POST("/teklif/hesapla", h.Quote.Calculate)

	// Pricing configuration is public to read, orders can be placed without
	// an account
	api.GET("/ayarlar", h.Settings.Get)
	api.POST("/siparisler", h.Order.Create)

	// Public catalog, gallery and reviews
	api.GET("/urunler", h.Product.List)
	api.GET("/urunler/:id", h.Product.Get)
	api.GET("/galeri", h.Gallery.List)
	api.GET("/galeri/:id", h.Gallery.Get)
	api.GET("/yorumlar", h.Review.List)
	api.GET("/yorumlar/istatistik", h.Review.Stats)
	api.POST("/yorumlar", h.Review.Create)

	// Auth routes with the stricter limiter on credential endpoints
	auth := api.Group("/auth")
	auth.POST("/kayit", rl.Limit("auth", cfg.RateLimit.AuthLimit), h.Auth.Register)
	auth.POST("/giris", rl.Limit("auth", cfg.RateLimit.AuthLimit), h.Auth.Login)
	auth.GET("/ben", jwtMw.Handle(), h.Auth.Me)
	auth.POST("/cikis", jwtMw.Handle(), h.Auth.Logout)
	auth.PUT("/sifre", jwtMw.Handle(), h.Auth.ChangePassword)
	auth.PUT("/profil", jwtMw.Handle(), h.User.UpdateProfile)

	// Admin routes
	admin := api.Group("")
	admin.Use(jwtMw.AdminOnly())
	{
		// Quote management
		admin.GET("/teklif", h.Quote.List)
		admin.GET("/teklif/:id", h.Quote.Get)
		admin.PUT("/teklif/:id/durum", h.Quote.UpdateStatus)
		admin.DELETE("/teklif/:id", h.Quote.Delete)

		// Pricing configuration
		admin.PUT("/ayarlar", h.Settings.Update)

		// Orders
		admin.GET("/siparisler", h.Order.List)
		admin.GET("/siparisler/istatistik", h.Order.Stats)
		admin.GET("/siparisler/:id", h.Order.Get)
		admin.PUT("/siparisler/:id", h.Order.Update)
		admin.PUT("/siparisler/:id/durum", h.Order.UpdateStatus)
		admin.DELETE("/siparisler/:id", h.Order.Delete)

		// Catalog management
		admin.POST("/urunler", h.Product.Create)
		admin.PUT("/urunler/:id", h.Product.Update)
		admin.DELETE("/urunler/:id", h.Product.Delete)

		// Gallery management
		admin.POST("/galeri", h.Gallery.Create)
		admin.PUT("/galeri/:id", h.Gallery.Update)
		admin.DELETE("/galeri/:id", h.Gallery.Delete)

		// Review moderation
		admin.GET("/yorumlar/tumu", h.Review.ListAll)
		admin.PUT("/yorumlar/:id/onayla", h.Review.Approve)
		admin.DELETE("/yorumlar/:id", h.Review.Delete)

		// User management
		admin.GET("/kullanicilar", h.User.List)
		admin.GET("/kullanicilar/:id", h.User.Get)
		admin.PUT("/kullanicilar/:id", h.User.Update)
		admin.PUT("/kullanicilar/:id/durum", h.User.ToggleStatus)
		admin.DELETE("/kullanicilar/:id", h.User.Delete)

		// Image uploads
		admin.POST("/yukle", h.Upload.Upload)
		admin.DELETE("/yukle/:dosya", h.Upload.Delete)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
