package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"selmag/feedback-service/internal/app/feedback/config"
	"selmag/feedback-service/internal/app/feedback/handler"
	"selmag/feedback-service/internal/app/feedback/infrastructure/messaging"
	"selmag/feedback-service/internal/app/feedback/messages"
	"selmag/feedback-service/internal/app/feedback/repository"
	"selmag/feedback-service/internal/app/feedback/service"
	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/problem"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(handler.ServiceName, cfg.LogLevel)

	if cfg.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.LogstashAddr, handler.ServiceName, cfg.LogLevel); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().Str("database", cfg.MongoDB.Database).Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	reviewRepo := repository.NewProductReviewRepository(db)
	favouriteRepo := repository.NewFavouriteProductRepository(db)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := reviewRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create review indexes")
	}
	// без уникального индекса избранное может задвоиться, поэтому ошибка фатальна
	if err := favouriteRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create favourite product indexes")
	}
	indexCancel()

	msgs, err := problem.LoadMessages(cfg.Locale, messages.Bundle)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load messages")
	}

	reviewsService := service.NewProductReviewsService(reviewRepo)
	favouritesService := service.NewFavouriteProductsService(favouriteRepo)
	eventsService := service.NewProductEventsService(reviewRepo, favouriteRepo)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	consumer := messaging.NewKafkaConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.Topic,
		cfg.Kafka.GroupID,
		cfg.Kafka.FetchTimeout,
		eventsService,
	)
	consumer.Start(consumerCtx)

	authMiddleware := auth.NewMiddleware(auth.NewJWTManager(cfg.JWT.Secret, 0))
	router := handler.SetupRoutes(
		handler.NewProductReviewsHandler(reviewsService),
		handler.NewFavouriteProductsHandler(favouritesService),
		authMiddleware,
		msgs,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("Starting Feedback Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Feedback Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	consumerCancel()
	consumer.Stop()

	logger.Info().Msg("Feedback Service stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var (
		client *mongo.Client
		err    error
	)

	for i := 0; i < 10; i++ {
		client, err = mongo.Connect(context.Background(), clientOptions)
		if err == nil {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = client.Ping(pingCtx, nil)
			pingCancel()
			if err == nil {
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to MongoDB, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}
