package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	catalogapp "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/catalog"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/lineitem"
	orderapp "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/order"
	userapp "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/application/user"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/config"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/cache"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/encoding/avro"
	ginserver "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/http/gin"
	kafkainfra "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/messaging/kafka"
	mongodb "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/infrastructure/persistence/mongo"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/interfaces/http/handler"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/interfaces/http/router"
	"github.com/shehanwijeyaweera/seyrashki-mobile-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address(),
		DB:   cfg.Redis.DB,
	})
	defer redisClient.Close()

	encoder, err := avro.NewEncoder(avro.OrderEventSchema)
	if err != nil {
		log.Fatalf("avro codec failed: %v", err)
	}

	producer := kafkainfra.NewOrderEventProducer(cfg.Kafka, encoder, appLogger)
	defer producer.Close()

	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	lineItemRepo := mongodb.NewLineItemRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	productCache := cache.NewRedisCache(redisClient)

	catalogService := catalogapp.NewService(productRepo, categoryRepo, productCache, appLogger)
	lineItemService := lineitem.NewService(lineItemRepo, catalogService)
	orderService := orderapp.NewService(orderRepo, lineItemService, producer, appLogger)
	userService := userapp.NewService(userRepo)

	orderHandler := handler.NewOrderHandler(orderService)
	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	userHandler := handler.NewUserHandler(userService)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, orderHandler, productHandler, categoryHandler, userHandler)

	appLogger.Info("starting api server",
		logger.String("addr", cfg.Server.Address()),
		logger.String("env", cfg.App.Env))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		log.Fatalf("server run failed: %v", err)
	}
}
