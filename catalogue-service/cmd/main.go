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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"selmag/catalogue-service/internal/app/catalogue/config"
	"selmag/catalogue-service/internal/app/catalogue/handler"
	"selmag/catalogue-service/internal/app/catalogue/infrastructure/cache"
	"selmag/catalogue-service/internal/app/catalogue/infrastructure/messaging"
	"selmag/catalogue-service/internal/app/catalogue/messages"
	"selmag/catalogue-service/internal/app/catalogue/repository"
	"selmag/catalogue-service/internal/app/catalogue/service"
	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/metrics"
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

	if err := repository.Migrate(cfg.Database.URL()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	pool, err := connectDB(cfg.Database.URL())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	db, err := openGorm(sqlDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize GORM")
	}
	logger.Info().Str("database", cfg.Database.DBName).Msg("Connected to PostgreSQL")

	statsCollector := metrics.NewDBStatsCollector(handler.ServiceName, sqlDB)
	if err := statsCollector.Start(cfg.Database.StatsSchedule); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.Database.StatsSchedule).Msg("Invalid DB stats schedule")
	}
	defer statsCollector.Stop()

	redisClient, err := cache.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("address", cfg.Redis.Address()).Msg("Connected to Redis")

	kafkaProducer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer kafkaProducer.Close()
	logger.Info().Str("topic", cfg.Kafka.Topic).Msg("Initialized Kafka producer")

	msgs, err := problem.LoadMessages(cfg.Locale, messages.Bundle)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load messages")
	}

	productRepo := repository.NewProductRepository(db)
	productCache := cache.NewRedisProductCache(redisClient, cfg.Redis.TTL)
	productService := service.NewProductService(productRepo, productCache, kafkaProducer)

	authMiddleware := auth.NewMiddleware(auth.NewJWTManager(cfg.JWT.Secret, 0))
	productHandler := handler.NewProductHandler(productService)
	router := handler.SetupRoutes(productHandler, authMiddleware, msgs)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("Starting Catalogue Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Catalogue Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Catalogue Service stopped gracefully")
}

func connectDB(databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	var pool *pgxpool.Pool
	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				cancel()
				return pool, nil
			}
			pool.Close()
		}
		cancel()

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to database, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}

// openGorm поднимает gorm поверх уже открытого пула pgx
func openGorm(sqlDB *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
