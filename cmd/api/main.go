package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Heybro1122/ShopHub/config"
	"github.com/Heybro1122/ShopHub/internal/auth"
	"github.com/Heybro1122/ShopHub/internal/catalog"
	catalogH "github.com/Heybro1122/ShopHub/internal/catalog/handler"
	catalogListenerPkg "github.com/Heybro1122/ShopHub/internal/catalog/listener"
	catalogRepoPkg "github.com/Heybro1122/ShopHub/internal/catalog/repository"
	catalogUCPkg "github.com/Heybro1122/ShopHub/internal/catalog/usecase"
	"github.com/Heybro1122/ShopHub/internal/cart"
	cartH "github.com/Heybro1122/ShopHub/internal/cart/handler"
	cartRepoPkg "github.com/Heybro1122/ShopHub/internal/cart/repository"
	cartUCPkg "github.com/Heybro1122/ShopHub/internal/cart/usecase"
	dashboardH "github.com/Heybro1122/ShopHub/internal/dashboard/handler"
	dashboardUCPkg "github.com/Heybro1122/ShopHub/internal/dashboard/usecase"
	"github.com/Heybro1122/ShopHub/internal/middleware"
	"github.com/Heybro1122/ShopHub/internal/order"
	orderRepoPkg "github.com/Heybro1122/ShopHub/internal/order/repository"
	"github.com/Heybro1122/ShopHub/internal/user"
	userRepoPkg "github.com/Heybro1122/ShopHub/internal/user/repository"
	"github.com/Heybro1122/ShopHub/internal/wishlist"
	wishlistH "github.com/Heybro1122/ShopHub/internal/wishlist/handler"
	wishlistRepoPkg "github.com/Heybro1122/ShopHub/internal/wishlist/repository"
	wishlistUCPkg "github.com/Heybro1122/ShopHub/internal/wishlist/usecase"
	"github.com/Heybro1122/ShopHub/pkg/broker"
	"github.com/Heybro1122/ShopHub/pkg/cache"
	"github.com/Heybro1122/ShopHub/pkg/database/postgres"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"github.com/Heybro1122/ShopHub/pkg/search"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Stores (postgres or in-memory fixtures)
	var (
		catalogRepo  catalog.Repository
		userRepo     user.Repository
		orderRepo    order.Repository
		wishlistRepo wishlist.Repository
	)

	switch cfg.Store.Backend {
	case "postgres":
		pg, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer pg.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		catalogRepo = catalogRepoPkg.NewPGRepository(pg)
		userRepo = userRepoPkg.NewPGRepository(pg)
		orderRepo = orderRepoPkg.NewPGRepository(pg)
		wishlistRepo = wishlistRepoPkg.NewPGRepository(pg)
	default:
		appLogger.Info("Using in-memory stores with fixture data")
		memCatalog := catalogRepoPkg.NewMemoryRepository()
		catalogRepo = memCatalog
		userRepo = userRepoPkg.NewMemoryRepository()
		orderRepo = orderRepoPkg.NewMemoryRepository()
		wishlistRepo = wishlistRepoPkg.NewMemoryRepository(memCatalog)
	}

	// 4. Initialize Redis (required for the redis cart backend, optional otherwise)
	var redisClient *cache.RedisClient
	if rc, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		if cfg.Cart.Backend == "redis" {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		appLogger.Warn("Could not connect to Redis (list caching disabled)", zap.Error(err))
	} else {
		redisClient = rc
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	var cartStore cart.Store
	if cfg.Cart.Backend == "redis" {
		cartStore = cartRepoPkg.NewRedisStore(redisClient)
	} else {
		cartStore = cartRepoPkg.NewMemoryStore()
	}

	// 5. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5.5 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to the store)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	productUC := catalogUCPkg.NewProductUseCase(catalogRepo, redisClient, esClient, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartStore, catalogRepo, appLogger)
	wishlistUC := wishlistUCPkg.NewWishlistUseCase(wishlistRepo, catalogRepo, appLogger)
	dashboardUC := dashboardUCPkg.NewDashboardUseCase(userRepo, orderRepo, catalogRepo, appLogger)

	// 6.5 Initialize Listeners
	catalogListener := catalogListenerPkg.NewCatalogListener(kafkaConsumer, catalogRepo, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go catalogListener.Start(ctx)

	// 7. Initialize Handlers and Router
	productHandler := catalogH.NewProductHandler(productUC, appLogger)
	cartHandler := cartH.NewCartHandler(cartUC, appLogger)
	wishlistHandler := wishlistH.NewWishlistHandler(wishlistUC, appLogger)
	dashboardHandler := dashboardH.NewDashboardHandler(dashboardUC, appLogger)

	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(appLogger), middleware.Recovery(appLogger))

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/search", productHandler.Search)
		api.POST("/products", auth.RequireAdmin(userRepo, appLogger), productHandler.Create)

		api.GET("/cart", cartHandler.Get)
		api.POST("/cart", cartHandler.Add)
		api.PUT("/cart", cartHandler.Update)
		api.DELETE("/cart", cartHandler.Delete)

		wl := api.Group("/wishlist", auth.RequireUser())
		{
			wl.GET("", wishlistHandler.List)
			wl.POST("", wishlistHandler.Add)
			wl.DELETE("", wishlistHandler.Delete)
		}

		admin := api.Group("/admin", auth.RequireAdmin(userRepo, appLogger))
		{
			admin.GET("/dashboard", dashboardHandler.Get)
		}
	}

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
