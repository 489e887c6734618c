package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"selmag/customer-app/internal/app/customer/config"
	"selmag/customer-app/internal/app/customer/handler"
	"selmag/customer-app/internal/app/customer/infrastructure/client"
	"selmag/customer-app/internal/app/customer/messages"
	"selmag/customer-app/internal/app/customer/service"
	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/problem"
	"selmag/pkg/webclient"
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

	msgs, err := problem.LoadMessages(cfg.Locale, messages.Bundle)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load messages")
	}

	// покупатель обращается к сервисам со своим токеном
	tokens := auth.RelayTokenSource{}
	catalogue := webclient.New(webclient.Config{
		BaseURL: cfg.Services.CatalogueURL,
		Timeout: cfg.Services.ClientTimeout,
		Service: handler.ServiceName,
		Peer:    "catalogue-service",
	}, tokens)
	feedback := webclient.New(webclient.Config{
		BaseURL: cfg.Services.FeedbackURL,
		Timeout: cfg.Services.ClientTimeout,
		Service: handler.ServiceName,
		Peer:    "feedback-service",
	}, tokens)

	storefront := service.NewStorefrontService(
		client.NewProductsClient(catalogue),
		client.NewProductReviewsClient(feedback),
		client.NewFavouriteProductsClient(feedback),
	)

	authMiddleware := auth.NewMiddleware(auth.NewJWTManager(cfg.JWT.Secret, 0))
	router, err := handler.SetupRoutes(
		handler.NewProductsHandler(storefront),
		handler.NewProductHandler(storefront),
		authMiddleware,
		msgs,
		cfg.AllowedOrigins,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up routes")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("catalogue_url", cfg.Services.CatalogueURL).
			Str("feedback_url", cfg.Services.FeedbackURL).
			Msg("Starting Customer App")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Customer App...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Customer App stopped gracefully")
}
