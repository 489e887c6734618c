package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"selmag/manager-app/internal/app/manager/config"
	"selmag/manager-app/internal/app/manager/handler"
	"selmag/manager-app/internal/app/manager/infrastructure/client"
	"selmag/manager-app/internal/app/manager/messages"
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

	// manager-app ходит в каталог как OAuth клиент со своими scope
	tokens := auth.NewIssuingTokenSource(
		auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenDuration),
		cfg.OAuth.ClientID,
		cfg.OAuth.Scopes,
	)
	productsClient := client.NewProductsRestClient(webclient.New(webclient.Config{
		BaseURL: cfg.Catalogue.URL,
		Timeout: cfg.Catalogue.ClientTimeout,
		Service: handler.ServiceName,
		Peer:    "catalogue-service",
	}, tokens))

	authMiddleware := auth.NewMiddleware(auth.NewJWTManager(cfg.JWT.Secret, 0))
	router, err := handler.SetupRoutes(
		handler.NewProductsHandler(productsClient),
		handler.NewProductHandler(productsClient),
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
			Str("catalogue_url", cfg.Catalogue.URL).
			Msg("Starting Manager App")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Manager App...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Manager App stopped gracefully")
}
