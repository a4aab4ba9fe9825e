package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"admin-service/config"
	"admin-service/controllers"
	"admin-service/database"
	"admin-service/kafka"
	"admin-service/middleware"
	"admin-service/repository"
	"admin-service/routes"
	"admin-service/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	mongoClient, db, err := database.Connect(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	// Repositories
	orderRepo := repository.NewMongoOrderRepo(db)
	customerRepo := repository.NewMongoCustomerRepo(db)
	productRepo := repository.NewMongoProductRepo(db)
	collectionRepo := repository.NewMongoCollectionRepo(db)

	// Stripe + Kafka
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey)
	orderProducer := kafka.NewOrderEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.OrderEventsTopic)

	// Services
	checkoutSvc := services.NewCheckoutService(stripeSvc, cfg.StoreURL, cfg.Currency, cfg.ShippingRates, logger)
	webhookSvc := services.NewWebhookService(stripeSvc, orderRepo, customerRepo, orderProducer, logger)
	orderSvc := services.NewOrderService(orderRepo, customerRepo, logger)
	dashboardSvc := services.NewDashboardService(orderRepo, customerRepo, logger)

	// Controllers
	cacheManager := controllers.NewCacheManager(redisClient)
	checkoutController := controllers.NewCheckoutController(checkoutSvc)
	webhookController := controllers.NewWebhookController(webhookSvc, logger)
	productController := controllers.NewProductController(productRepo, cacheManager)
	collectionController := controllers.NewCollectionController(collectionRepo)
	orderController := controllers.NewOrderController(orderSvc)
	customerController := controllers.NewCustomerController(customerRepo)
	dashboardController := controllers.NewDashboardController(dashboardSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(r,
		checkoutController,
		webhookController,
		productController,
		collectionController,
		orderController,
		customerController,
		dashboardController,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Admin Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Admin Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := orderProducer.Close(); err != nil {
		zap.L().Error("Failed to close Kafka producer", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(mongoClient); err != nil {
		zap.L().Error("Failed to disconnect MongoDB", zap.Error(err))
	}

	zap.L().Info("Admin Service stopped gracefully")
}
