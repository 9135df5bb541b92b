package main

import (
	"context"
	"fmt"
	"log"

	"nanumi/config"
	"nanumi/internal/handler"
	"nanumi/internal/middleware"
	"nanumi/internal/notify"
	"nanumi/internal/repository"
	"nanumi/internal/services"
	"nanumi/pkg/database"
	"nanumi/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	mongoDB, err := database.ConnectMongo(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to message store: %v", err)
	}

	redisClient := notify.NewRedisClient(
		fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		cfg.RedisPassword,
		cfg.RedisDB,
	)
	broker := notify.NewRedisBroker(redisClient)

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	blacklistRepo := repository.NewBlacklistRepository(db)
	chatRoomRepo := repository.NewChatRoomRepository(db)
	messageRepo := repository.NewMessageRepository(mongoDB)

	matchService := services.NewMatchService(db, l)
	productService := services.NewProductService(productRepo, categoryRepo, userRepo, l)
	userService := services.NewUserService(userRepo, blacklistRepo)
	chatRoomService := services.NewChatRoomService(db, chatRoomRepo, userRepo, blacklistRepo, messageRepo, broker, l)

	productHandler := handler.NewProductHandler(productService, matchService)
	chatRoomHandler := handler.NewChatRoomHandler(chatRoomService)
	userHandler := handler.NewUserHandler(userService)

	if cfg.AppMode == logger.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(l))
	r.Use(middleware.ErrorHandler(l))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	products := r.Group("/products")
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.ListNearby)
		products.GET("/:id", productHandler.GetByID)
		products.PATCH("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/applications", productHandler.Apply)
	}

	chatrooms := r.Group("/chatrooms")
	{
		chatrooms.POST("", chatRoomHandler.Create)
		chatrooms.GET("/:id/messages", chatRoomHandler.History)
		chatrooms.POST("/:id/report", chatRoomHandler.Report)
	}

	users := r.Group("/users")
	{
		users.GET("/:id/chatrooms", chatRoomHandler.ListForUser)
		users.GET("/:id/products", productHandler.ListByUser)
		users.POST("/:id/blacklist", userHandler.Block)
		users.DELETE("/:id/blacklist/:targetId", userHandler.Unblock)
	}

	l.Infof("starting server on port %s", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
